package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/setup"
	setuplogger "github.com/povarna/generative-ai-agents/completion-agent/internal/setup/logger"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()

	// stdout carries the MCP protocol, log to stderr
	logger := setuplogger.NewConsole(cfg.LogLevel)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The MCP surface has no caller identity, so auth does not apply.
	cfg.RequireAuth = false
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	service, err := setup.WireCompletion(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "completion-agent",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "finish_prompt",
		Description: "Finish the given text with a text completion model and return the continuation",
	}, mcpadapter.NewFinishHandler(service, guardrails.NewLengthValidator(cfg.MaxPromptLength), &logger))

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
