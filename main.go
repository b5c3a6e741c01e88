package main

import (
	"net/http"

	"notes_share_go/auth"
	"notes_share_go/config"
	"notes_share_go/controllers"
	"notes_share_go/data"
	"notes_share_go/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	store, err := data.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer store.Close()

	jwtSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	router := controllers.NewRouter(store, jwtSvc, cfg, log)

	log.Info().Str("addr", cfg.ServerAddr).Str("db", cfg.DatabasePath).Msg("starting server")
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
