package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "spark-chat/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all application routes.
func NewRouter(chatHandler *ChatHandler, settingsHandler *SettingsHandler, authHandler *AuthHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Swagger UI for the API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Health check for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// A shared request timeout. Message submission waits for the
		// generator, but its delay window is bounded well below this.
		r.Use(middleware.Timeout(60 * time.Second))

		// --- Chats ---
		r.Post("/chats", chatHandler.CreateChat)
		r.Get("/chats", chatHandler.GetChats)
		r.Get("/chats/{chatID}", chatHandler.GetChat)
		r.Post("/chats/messages", chatHandler.SubmitMessage)
		r.Get("/status", chatHandler.Status)

		// --- Settings ---
		r.Get("/settings", settingsHandler.GetSettings)
		r.Put("/settings", settingsHandler.UpdateSettings)
		r.Get("/export", settingsHandler.ExportData)
		r.Delete("/data", settingsHandler.ClearData)

		// --- Auth ---
		r.Post("/auth/code", authHandler.SendCode)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)
	})

	// Serves the static frontend bundle for simplified local development;
	// a production deployment would put a real web server in front.
	fileServer := http.FileServer(http.Dir("./web/dist"))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}
