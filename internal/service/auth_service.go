package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/store"
)

// AuthService is the mock identity provider: one fixed login code for
// everyone, no sessions, no tokens. The rest of the system only ever asks
// it who the current user is.
type AuthService struct {
	store store.Store
	code  string
}

func NewAuthService(st store.Store, code string) *AuthService {
	return &AuthService{store: st, code: code}
}

// SendCode pretends to deliver a login code to the given address. The code
// is fixed; it is logged so a developer can complete the flow.
func (s *AuthService) SendCode(ctx context.Context, email string) error {
	slog.Info("Login code issued", "email", email, "code", s.code)
	return nil
}

// Login checks the code and, on match, creates and persists the user
// record. The display name is the local part of the email address.
func (s *AuthService) Login(ctx context.Context, email, code string) (*model.User, error) {
	if code != s.code {
		return nil, fmt.Errorf("%w: invalid login code", app_errors.ErrUnauthorized)
	}
	name, _, _ := strings.Cut(email, "@")
	return s.createUser(ctx, email, name)
}

// Signup is Login with a caller-supplied display name. An empty name falls
// back to the local part of the email address.
func (s *AuthService) Signup(ctx context.Context, email, name, code string) (*model.User, error) {
	if code != s.code {
		return nil, fmt.Errorf("%w: invalid login code", app_errors.ErrUnauthorized)
	}
	if strings.TrimSpace(name) == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return s.createUser(ctx, email, name)
}

func (s *AuthService) createUser(ctx context.Context, email, name string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	val, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("could not serialize user: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyUser, string(val)); err != nil {
		return nil, fmt.Errorf("could not persist user: %w", err)
	}
	return user, nil
}

// CurrentUser returns the persisted user record, or ErrUnauthorized when
// nobody is logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	val, err := s.store.Get(ctx, store.KeyUser)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, app_errors.ErrUnauthorized
		}
		return nil, fmt.Errorf("could not load user: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, fmt.Errorf("persisted user is malformed: %w", err)
	}
	return &user, nil
}

// Logout removes the user record. Chats and settings are wiped separately
// by the logout handler, matching the reference behavior of clearing all
// stored state on logout.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeyUser)
}
