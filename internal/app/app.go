package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"spark-chat/backend/internal/api"
	"spark-chat/backend/internal/config"
	"spark-chat/backend/internal/database"
	"spark-chat/backend/internal/generator"
	"spark-chat/backend/internal/repository"
	"spark-chat/backend/internal/service"
	"spark-chat/backend/internal/store"
)

// App bundles everything Run needs to start and stop the service.
type App struct {
	DB     *sql.DB // nil for the redis and memory backends
	Server *http.Server
}

// NewApp wires the whole dependency graph from configuration: store,
// repository (loaded from the store), generator, services, router.
func NewApp(cfg *config.Config) (*App, error) {
	st, db, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.New(st)
	if err := repo.Load(context.Background()); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("failed to load chat collection: %w", err)
	}

	gen := newGenerator(cfg)

	chatService := service.NewChatService(repo, gen)
	settingsService := service.NewSettingsService(st, repo)
	authService := service.NewAuthService(st, cfg.LoginCode)

	chatHandler := api.NewChatHandler(chatService)
	settingsHandler := api.NewSettingsHandler(settingsService)
	authHandler := api.NewAuthHandler(authService, settingsService)
	router := api.NewRouter(chatHandler, settingsHandler, authHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // submission waits for the generator's delay window
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger here.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	if app.DB != nil {
		defer func() {
			if err := app.DB.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "store", cfg.StoreBackend, "generator", cfg.Generator)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received, draining connections.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// newStore builds the configured persistent store backend. The returned DB
// is non-nil only for the sqlite backend; the caller owns closing it.
func newStore(cfg *config.Config) (store.Store, *sql.DB, error) {
	switch strings.ToLower(cfg.StoreBackend) {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		return store.NewRedisStore(rdb), nil, nil
	case "memory":
		slog.Info("Using in-memory store; nothing will survive a restart.")
		return store.NewMemoryStore(), nil, nil
	default:
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return store.NewSQLiteStore(db), db, nil
	}
}

// newGenerator builds the configured response generator.
func newGenerator(cfg *config.Config) generator.Generator {
	if strings.ToLower(cfg.Generator) == "remote" {
		return generator.NewRemote(cfg.GeneratorURL)
	}
	return generator.NewMock(
		time.Duration(cfg.ReplyMinDelayMs)*time.Millisecond,
		time.Duration(cfg.ReplyMaxDelayMs)*time.Millisecond,
	)
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
