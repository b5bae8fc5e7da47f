package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	openai "github.com/sashabaranov/go-openai"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/genai"
	"go_5_flashcard_keep/internal/handlers"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/review"
	"go_5_flashcard_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the configured one is built.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection
	collectionRepo := repository.NewGormCollectionRepository()
	cardRepo := repository.NewGormCardRepository()
	collectionService := service.NewCollectionService(db, collectionRepo, cardRepo)

	generator := genai.NewGenerator(openai.NewClient(config.Cfg.OpenAI.APIKey), &config.Cfg)
	draftStore := review.NewStore()

	generateHandler := handlers.NewGenerateHandler(generator, logger)
	draftHandler := handlers.NewDraftHandler(generator, draftStore, collectionService, logger)
	collectionHandler := handlers.NewCollectionHandler(collectionService, logger)

	// Abandoned drafts are reaped in the background; a draft is only ever
	// meant to live for one review session.
	pruneCtx, stopPruning := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-pruneCtx.Done():
				return
			case <-ticker.C:
				if n := draftStore.PruneOlderThan(time.Now().Add(-2 * time.Hour)); n > 0 {
					slog.Info("Pruned abandoned drafts", slog.Int("count", n))
				}
			}
		}
	}()
	defer stopPruning()

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public generation contract
		r.Post("/generate", generateHandler.Generate)

		// Everything touching a user's namespace requires identity
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(&config.Cfg))

			r.Route("/drafts", func(r chi.Router) {
				r.Post("/", draftHandler.CreateDraft)
				r.Get("/{draft_id}", draftHandler.GetDraft)
				r.Delete("/{draft_id}", draftHandler.DiscardDraft)
				r.Post("/{draft_id}/save", draftHandler.SaveDraft)
				r.Patch("/{draft_id}/cards/{index}", draftHandler.EditCard)
				r.Delete("/{draft_id}/cards/{index}", draftHandler.DeleteCard)
			})

			r.Route("/collections", func(r chi.Router) {
				r.Get("/", collectionHandler.ListCollections)
				r.Post("/", collectionHandler.SaveCollection)
				r.Get("/{name}", collectionHandler.GetCollection)
				r.Delete("/{name}", collectionHandler.DeleteCollection)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second, // generation calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
