package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/generator"
	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/repository"
)

// ChatService orchestrates one user turn: it appends the user message,
// invokes the response generator, and appends the generated assistant
// message. All chat state flows through the repository.
type ChatService struct {
	repo *repository.ChatRepository
	gen  generator.Generator
	busy atomic.Bool
}

// SubmitResult is what one successful (or partially successful) submission
// produced. AssistantMessage is nil when generation failed.
type SubmitResult struct {
	Chat             *model.Chat    `json:"chat"`
	UserMessage      model.Message  `json:"user_message"`
	AssistantMessage *model.Message `json:"assistant_message,omitempty"`
}

func NewChatService(repo *repository.ChatRepository, gen generator.Generator) *ChatService {
	return &ChatService{repo: repo, gen: gen}
}

// Submit processes one user turn for the given chat. An empty chatID creates
// a new chat titled from the content. Whitespace-only content is a no-op and
// returns ErrEmptyMessage with no state change.
//
// On generation failure the user message stays persisted, and the result
// carrying it is returned together with a wrapped ErrGeneration.
func (s *ChatService) Submit(ctx context.Context, chatID, content string) (*SubmitResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, app_errors.ErrEmptyMessage
	}

	if chatID == "" {
		chat, err := s.repo.CreateChat(ctx, repository.DeriveTitle(content))
		if err != nil {
			return nil, fmt.Errorf("could not create chat: %w", err)
		}
		chatID = chat.ID
	}

	userMsg := model.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Role:      model.RoleUser,
		Timestamp: time.Now().UTC(),
	}
	chat, err := s.repo.AppendMessage(ctx, chatID, userMsg)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("could not append user message: %w", err)
	}

	// Busy covers the whole generation window, whatever the exit path.
	s.busy.Store(true)
	defer s.busy.Store(false)

	reply, err := s.gen.Generate(ctx, userMsg.Content)
	if err != nil {
		slog.Error("Response generation failed", "chat_id", chatID, "error", err)
		return &SubmitResult{Chat: chat, UserMessage: userMsg},
			fmt.Errorf("%w: %v", app_errors.ErrGeneration, err)
	}

	assistantMsg := model.Message{
		ID:        uuid.NewString(),
		Content:   reply,
		Role:      model.RoleAssistant,
		Timestamp: time.Now().UTC(),
	}
	chat, err = s.repo.AppendMessage(ctx, chatID, assistantMsg)
	if err != nil {
		return nil, fmt.Errorf("could not append assistant message: %w", err)
	}

	return &SubmitResult{Chat: chat, UserMessage: userMsg, AssistantMessage: &assistantMsg}, nil
}

// NewChat creates an empty chat. It becomes the most recent one.
func (s *ChatService) NewChat(ctx context.Context, title string) (*model.Chat, error) {
	return s.repo.CreateChat(ctx, title)
}

// ListChats returns all chats, most recently created first.
func (s *ChatService) ListChats(ctx context.Context) ([]*model.Chat, error) {
	return s.repo.ListChats(), nil
}

// GetChat returns one chat with all its messages.
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chat, err := s.repo.GetChat(chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, err
	}
	return chat, nil
}

// Busy reports whether a generation is in flight. The presentation layer
// uses it to gate further submissions; the service itself does not prevent
// overlapping Submit calls.
func (s *ChatService) Busy() bool {
	return s.busy.Load()
}
