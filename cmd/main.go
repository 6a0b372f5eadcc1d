package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eventfront/cmd/buildCFG"
	"eventfront/cmd/middleware"
	"eventfront/internal/api/api"
	"eventfront/internal/backend"
	"eventfront/internal/service"

	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()
	log := zlog.Logger
	log.Info().Msg("Starting event registration front service")

	cfg := config.New()
	if err := cfg.Load("config.yaml", "", "'"); err != nil {
		log.Fatal().Msgf("failed to load configuration: %v", err)
	}
	serverCfg := buildCFG.BuildServerConfig(cfg, &log)
	port := serverCfg.Port

	backendCfg, err := buildCFG.BuildBackendConfig(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build backend config")
	}

	// no identity-provider key, no service: a dashboard without auth is a
	// broken UI, so halt initialization instead of serving one
	authCfg, err := buildCFG.BuildAuthConfig(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load identity provider configuration")
	}

	client := backend.NewClient(backendCfg.BaseURL, middleware.ForwardedToken, &log)

	serviceInstance := service.NewService(client, &log)
	app := api.NewRouters(&api.Routers{
		Service:   serviceInstance,
		JWTSecret: authCfg.JWTSecret,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s", port)
		if err := app.Run(":" + port); err != nil {
			serverErrChan <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		log.Info().Msgf("Received signal %s. Initiating shutdown...", sig)
	case err := <-serverErrChan:
		log.Error().Msgf("Server error: %v", err)
	}

	log.Info().Msg("Shutdown complete")
}
