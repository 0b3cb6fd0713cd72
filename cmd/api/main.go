package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/api"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/setup"
	setuplogger "github.com/povarna/generative-ai-agents/completion-agent/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Completion Agent API",
			Description: "Finishes prompts with a text completion model",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "completion", Description: "Prompt completion"}},
	}
}

func main() {
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging, filters log through the global logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := setuplogger.New(cfg.LogLevel)
	log.Logger = logger

	log.Info().Msg("Starting Completion Agent API Server")
	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to wire dependencies")
	}
	defer deps.Close()

	log.Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Bool("require_auth", cfg.RequireAuth).
		Msg("Completion client initialized")

	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	// register API
	api.RegisterRoutes(container, deps.Handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CompletionTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Completion Agent stopped")
}
