package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/interfaces"
)

// AuthHandler exposes the mock login flow.
type AuthHandler struct {
	auth     interfaces.AuthService
	settings interfaces.SettingsService
}

func NewAuthHandler(auth interfaces.AuthService, settings interfaces.SettingsService) *AuthHandler {
	return &AuthHandler{auth: auth, settings: settings}
}

// SendCodeRequest is the body of POST /auth/code.
type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=100"`
	Code  string `json:"code" validate:"required"`
}

// SendCode handles POST /auth/code.
//
//	@Summary  Issue a login code for an email address
//	@Tags     auth
//	@Param    request body SendCodeRequest true "Email"
//	@Success  200 {object} StatusResponse
//	@Failure  400 {object} ErrorResponse
//	@Router   /auth/code [post]
func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.auth.SendCode(r.Context(), req.Email); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Login handles POST /auth/login.
//
//	@Summary  Exchange an email and login code for a user record
//	@Tags     auth
//	@Param    request body LoginRequest true "Credentials"
//	@Success  200 {object} model.User
//	@Failure  401 {object} ErrorResponse
//	@Router   /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Code)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// Signup handles POST /auth/signup: like Login, but with a chosen display
// name instead of one derived from the email address.
//
//	@Summary  Sign up with an email, display name and login code
//	@Tags     auth
//	@Param    request body SignupRequest true "Account details"
//	@Success  200 {object} model.User
//	@Failure  401 {object} ErrorResponse
//	@Router   /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Email, req.Name, req.Code)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// Me handles GET /auth/me.
//
//	@Summary  Get the currently logged-in user
//	@Tags     auth
//	@Success  200 {object} model.User
//	@Failure  401 {object} ErrorResponse
//	@Router   /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout. Like the reference application, logging
// out also wipes chats and settings.
//
//	@Summary  Log out and wipe stored state
//	@Tags     auth
//	@Success  200 {object} StatusResponse
//	@Router   /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.settings.ClearData(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
