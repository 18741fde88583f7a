package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spark-chat/backend/internal/model"
	"spark-chat/backend/internal/repository"
	"spark-chat/backend/internal/store"
)

// SettingsService manages the persisted application settings and the two
// whole-account operations that live on the settings screen: data export
// and clear-all-data.
type SettingsService struct {
	store store.Store
	repo  *repository.ChatRepository
}

func NewSettingsService(st store.Store, repo *repository.ChatRepository) *SettingsService {
	return &SettingsService{store: st, repo: repo}
}

// Get returns the persisted settings. An absent blob yields the defaults; a
// malformed blob is logged and also yields the defaults.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	val, err := s.store.Get(ctx, store.KeySettings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("could not load settings: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		slog.Warn("Persisted settings are malformed, using defaults.", "error", err)
		return model.DefaultSettings(), nil
	}
	return &settings, nil
}

// Save overwrites the settings blob.
func (s *SettingsService) Save(ctx context.Context, settings *model.Settings) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not serialize settings: %w", err)
	}
	return s.store.Set(ctx, store.KeySettings, string(val))
}

// Export bundles the user profile, settings and all chats into the
// downloadable document. There is no corresponding import.
func (s *SettingsService) Export(ctx context.Context) (*model.ExportBundle, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	bundle := &model.ExportBundle{
		Settings:   settings,
		Chats:      s.repo.ListChats(),
		ExportDate: time.Now().UTC(),
	}

	val, err := s.store.Get(ctx, store.KeyUser)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("could not load user for export: %w", err)
		}
	} else {
		var user model.User
		if err := json.Unmarshal([]byte(val), &user); err == nil {
			bundle.User = &user
		}
	}

	return bundle, nil
}

// ClearData wipes all chats and settings. The user record is untouched;
// that is the logout flow's job.
func (s *SettingsService) ClearData(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("could not clear chats: %w", err)
	}
	if err := s.store.Delete(ctx, store.KeySettings); err != nil {
		return fmt.Errorf("could not clear settings: %w", err)
	}
	return nil
}
