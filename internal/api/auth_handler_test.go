package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spark-chat/backend/internal/api"
	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/interfaces/mocks"
	"spark-chat/backend/internal/model"
)

func setupAuthHandler(t *testing.T) (*api.AuthHandler, *mocks.MockAuthService, *mocks.MockSettingsService) {
	mockAuthSvc := mocks.NewMockAuthService(t)
	mockSettingsSvc := mocks.NewMockSettingsService(t)
	return api.NewAuthHandler(mockAuthSvc, mockSettingsSvc), mockAuthSvc, mockSettingsSvc
}

func TestAuthHandler_SendCode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		mockAuthSvc.On("SendCode", mock.Anything, "alice@example.com").Return(nil).Once()

		body := strings.NewReader(`{"email": "alice@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/code", body)
		rr := httptest.NewRecorder()
		handler.SendCode(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid email is 400", func(t *testing.T) {
		handler, _, _ := setupAuthHandler(t)

		body := strings.NewReader(`{"email": "not-an-email"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/code", body)
		rr := httptest.NewRecorder()
		handler.SendCode(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		user := &model.User{ID: "u1", Email: "alice@example.com", Name: "alice"}
		mockAuthSvc.On("Login", mock.Anything, "alice@example.com", "123456").
			Return(user, nil).Once()

		body := strings.NewReader(`{"email": "alice@example.com", "code": "123456"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned model.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, "alice", returned.Name)
	})

	t.Run("Wrong code is 401", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		mockAuthSvc.On("Login", mock.Anything, "alice@example.com", "000000").
			Return(nil, fmt.Errorf("%w: invalid login code", app_errors.ErrUnauthorized)).Once()

		body := strings.NewReader(`{"email": "alice@example.com", "code": "000000"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Missing code is 400", func(t *testing.T) {
		handler, _, _ := setupAuthHandler(t)

		body := strings.NewReader(`{"email": "alice@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		user := &model.User{ID: "u1", Email: "ada@example.com", Name: "Ada Lovelace"}
		mockAuthSvc.On("Signup", mock.Anything, "ada@example.com", "Ada Lovelace", "123456").
			Return(user, nil).Once()

		body := strings.NewReader(`{"email": "ada@example.com", "name": "Ada Lovelace", "code": "123456"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned model.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, "Ada Lovelace", returned.Name)
	})

	t.Run("Missing name is 400", func(t *testing.T) {
		handler, _, _ := setupAuthHandler(t)

		body := strings.NewReader(`{"email": "ada@example.com", "code": "123456"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("Logged in", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		user := &model.User{ID: "u1", Email: "alice@example.com"}
		mockAuthSvc.On("CurrentUser", mock.Anything).Return(user, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not logged in is 401", func(t *testing.T) {
		handler, mockAuthSvc, _ := setupAuthHandler(t)
		mockAuthSvc.On("CurrentUser", mock.Anything).
			Return(nil, fmt.Errorf("%w: not logged in", app_errors.ErrUnauthorized)).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler, mockAuthSvc, mockSettingsSvc := setupAuthHandler(t)
	mockAuthSvc.On("Logout", mock.Anything).Return(nil).Once()
	mockSettingsSvc.On("ClearData", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	handler.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rr.Body.String())
}
