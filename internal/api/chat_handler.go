package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "spark-chat/backend/internal/errors"
	"spark-chat/backend/internal/interfaces"
	"spark-chat/backend/internal/model"
)

// ChatHandler exposes the chat collection and the message pipeline.
type ChatHandler struct {
	chats interfaces.ChatService
}

func NewChatHandler(chats interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// CreateChatRequest is the optional body of POST /chats.
type CreateChatRequest struct {
	Title string `json:"title" validate:"omitempty,max=100"`
}

// SubmitMessageRequest is the body of POST /chats/messages. An absent
// chat_id submits into a brand-new chat.
type SubmitMessageRequest struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

// SubmitErrorResponse reports a failed generation. The user message was
// already persisted; clients keep it instead of rolling back.
type SubmitErrorResponse struct {
	Error       string        `json:"error"`
	ChatID      string        `json:"chat_id"`
	UserMessage model.Message `json:"user_message"`
}

// CreateChat handles POST /chats. The body is optional; without one the new
// chat gets the placeholder title.
//
//	@Summary  Create an empty chat
//	@Tags     chats
//	@Success  201 {object} model.Chat
//	@Router   /chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if r.Body != nil {
		// An empty or absent body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	chat, err := h.chats.NewChat(r.Context(), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetChats handles GET /chats.
//
//	@Summary  List all chats, most recently created first
//	@Tags     chats
//	@Success  200 {array} model.Chat
//	@Router   /chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chats.ListChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// GetChat handles GET /chats/{chatID}.
//
//	@Summary  Get one chat with all its messages
//	@Tags     chats
//	@Param    chatID path string true "Chat ID"
//	@Success  200 {object} model.Chat
//	@Failure  404 {object} ErrorResponse
//	@Router   /chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	chat, err := h.chats.GetChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chat)
}

// SubmitMessage handles POST /chats/messages: one full user turn. The
// response carries the user message and, on success, the assistant reply.
//
//	@Summary  Submit a user message and wait for the assistant reply
//	@Tags     chats
//	@Param    request body SubmitMessageRequest true "Submission"
//	@Success  200 {object} service.SubmitResult
//	@Failure  400 {object} ErrorResponse
//	@Failure  502 {object} SubmitErrorResponse
//	@Router   /chats/messages [post]
func (h *ChatHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}

	result, err := h.chats.Submit(r.Context(), req.ChatID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrEmptyMessage):
			// Whitespace-only input is a silent no-op.
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, app_errors.ErrGeneration) && result != nil:
			respondWithJSON(w, http.StatusBadGateway, SubmitErrorResponse{
				Error:       "The assistant could not produce a reply. Your message was saved.",
				ChatID:      result.Chat.ID,
				UserMessage: result.UserMessage,
			})
		default:
			respondWithError(w, err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Status handles GET /status: whether a generation is currently in flight.
// The presentation layer polls this to disable input while busy.
func (h *ChatHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]bool{"busy": h.chats.Busy()})
}
