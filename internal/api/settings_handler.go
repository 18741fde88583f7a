package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/interfaces"
	"spark-chat/backend/internal/model"
)

// SettingsHandler exposes settings plus the data export and wipe operations.
type SettingsHandler struct {
	settings interfaces.SettingsService
}

func NewSettingsHandler(settings interfaces.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /settings.
//
//	@Summary  Get the current settings (defaults when nothing is saved)
//	@Tags     settings
//	@Success  200 {object} model.Settings
//	@Router   /settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings. The whole settings document is
// replaced; there is no per-field patch path.
//
//	@Summary  Replace the settings
//	@Tags     settings
//	@Param    request body model.Settings true "Settings"
//	@Success  200 {object} StatusResponse
//	@Failure  400 {object} ErrorResponse
//	@Router   /settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&settings); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.settings.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ExportData handles GET /export: the downloadable bundle of user profile,
// settings and chats.
//
//	@Summary  Download all stored data as a JSON document
//	@Tags     settings
//	@Success  200 {object} model.ExportBundle
//	@Router   /export [get]
func (h *SettingsHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.settings.Export(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}

	filename := fmt.Sprintf("chat-export-%s.json", bundle.ExportDate.Format(time.DateOnly))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	respondWithJSON(w, http.StatusOK, bundle)
}

// ClearData handles DELETE /data: removes all chats and settings. This is
// the only deletion path; individual chats cannot be removed.
//
//	@Summary  Clear all chats and settings
//	@Tags     settings
//	@Success  200 {object} StatusResponse
//	@Router   /data [delete]
func (h *SettingsHandler) ClearData(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.ClearData(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
