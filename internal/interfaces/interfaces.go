package interfaces

import (
	"context"

	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/service"
)

// This file defines the interfaces for our core services. The API layer
// depends on these instead of the concrete implementations, which keeps it
// decoupled and makes handler tests trivial to mock.

// ChatService is the contract for the message pipeline and chat listings.
type ChatService interface {
	Submit(ctx context.Context, chatID, content string) (*service.SubmitResult, error)
	NewChat(ctx context.Context, title string) (*model.Chat, error)
	ListChats(ctx context.Context) ([]*model.Chat, error)
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	Busy() bool
}

// SettingsService is the contract for settings, export and data wipe.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
	Export(ctx context.Context) (*model.ExportBundle, error)
	ClearData(ctx context.Context) error
}

// AuthService is the contract for the mock identity provider.
type AuthService interface {
	SendCode(ctx context.Context, email string) error
	Login(ctx context.Context, email, code string) (*model.User, error)
	Signup(ctx context.Context, email, name, code string) (*model.User, error)
	CurrentUser(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
}
