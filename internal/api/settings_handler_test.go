package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spark-chat/backend/internal/api"
	"spark-chat/backend/internal/interfaces/mocks"
	"spark-chat/backend/internal/model"
)

func setupSettingsHandler(t *testing.T) (*api.SettingsHandler, *mocks.MockSettingsService) {
	mockSettingsSvc := mocks.NewMockSettingsService(t)
	return api.NewSettingsHandler(mockSettingsSvc), mockSettingsSvc
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	handler, mockSettingsSvc := setupSettingsHandler(t)
	mockSettingsSvc.On("Get", mock.Anything).Return(model.DefaultSettings(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rr := httptest.NewRecorder()
	handler.GetSettings(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var returned model.Settings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
	assert.Equal(t, "medium", returned.Chat.FontSize)
	assert.Equal(t, "en", returned.Language)
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSettingsSvc := setupSettingsHandler(t)
		mockSettingsSvc.On("Save", mock.Anything, mock.MatchedBy(func(s *model.Settings) bool {
			return s.Chat.FontSize == "large"
		})).Return(nil).Once()

		settings := model.DefaultSettings()
		settings.Chat.FontSize = "large"
		body, err := json.Marshal(settings)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(string(body)))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid font size is 400", func(t *testing.T) {
		handler, _ := setupSettingsHandler(t)

		settings := model.DefaultSettings()
		settings.Chat.FontSize = "enormous"
		body, err := json.Marshal(settings)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(string(body)))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed body is 400", func(t *testing.T) {
		handler, _ := setupSettingsHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader("{broken"))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSettingsHandler_ExportData(t *testing.T) {
	handler, mockSettingsSvc := setupSettingsHandler(t)
	bundle := &model.ExportBundle{
		Settings:   model.DefaultSettings(),
		Chats:      []*model.Chat{{ID: "chat1", Title: "Kept"}},
		ExportDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	mockSettingsSvc.On("Export", mock.Anything).Return(bundle, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/export", nil)
	rr := httptest.NewRecorder()
	handler.ExportData(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="chat-export-2025-06-01.json"`,
		rr.Header().Get("Content-Disposition"))
	var returned model.ExportBundle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
	assert.Len(t, returned.Chats, 1)
}

func TestSettingsHandler_ClearData(t *testing.T) {
	handler, mockSettingsSvc := setupSettingsHandler(t)
	mockSettingsSvc.On("ClearData", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/v1/data", nil)
	rr := httptest.NewRecorder()
	handler.ClearData(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rr.Body.String())
}
