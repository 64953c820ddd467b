package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"pet-care-hub/internal/adapters/assistant/gemini"
	pg "pet-care-hub/internal/adapters/storage/postgres"
	"pet-care-hub/internal/config"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "pet-care-hub",
	})

	assistantClient, err := gemini.NewClient(gemini.Config{
		BaseURL: cfg.AssistantBaseURL,
		APIKey:  cfg.AssistantAPIKey,
		Model:   cfg.AssistantModel,
	})
	if err != nil {
		log.Error("assistant client", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if !assistantClient.IsConfigured() {
		log.Warn("assistant not configured, concierge will reply with fallback", nil)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		Assistant: assistantClient,
		DB:        db,
		Logger:    log,
	})

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
