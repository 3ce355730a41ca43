package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"visionai/internal/http/handlers"
	httpapi "visionai/internal/http/httpapi"
	"visionai/internal/imagegen"
	"visionai/internal/infra"
	"visionai/internal/web"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := infra.NewLogger(os.Getenv("APP_ENV"))
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := infra.NewLogger(cfg.AppEnv)

	generator, err := imagegen.NewNebiusClient(imagegen.NebiusOptions{
		BaseURL: cfg.NebiusBaseURL,
		APIKey:  cfg.NebiusAPIKey,
		Model:   cfg.ImageModel,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create image provider client")
	}

	pages, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse page templates")
	}

	app := handlers.NewApp(logger, generator, pages)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("model", cfg.ImageModel).Msg("vision ai listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	logger.Info().Msg("server stopped")
}
