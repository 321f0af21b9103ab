package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pagebot/messenger-relay/internal/ai"
	"github.com/pagebot/messenger-relay/internal/config"
	"github.com/pagebot/messenger-relay/internal/messenger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Logger ---
	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := baseLogger.Sugar()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Messenger module wiring ---
	repo := messenger.NewRepo(db)
	aiClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	outbound := messenger.NewGraphOutbound(cfg.GraphAPIBaseURL, cfg.PageAccessToken, zl)
	svc := messenger.NewService(repo, aiClient, outbound, zl)
	handler := messenger.NewHandler(svc, cfg.VerifyToken, zl)

	messenger.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
