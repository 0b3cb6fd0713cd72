package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/setup"
	setuplogger "github.com/povarna/generative-ai-agents/completion-agent/internal/setup/logger"
)

func main() {
	prompt := flag.String("prompt", "", "The text to finish")
	stdin := flag.Bool("stdin", false, "Read prompt from stdin")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var finalPrompt string

	if *stdin {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Failed to read from stdin:", err)
		}
		finalPrompt = string(bytes)
	} else if *prompt != "" {
		finalPrompt = *prompt
	} else {
		log.Fatal("Please provide a prompt using -prompt or -stdin")
	}

	ctx := context.Background()

	cfg := setup.LoadConfig()
	cfg.RequireAuth = false
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := setuplogger.NewConsole(cfg.LogLevel)
	service, err := setup.WireCompletion(ctx, cfg, &logger)
	if err != nil {
		log.Fatal(err)
	}

	text, err := service.Complete(ctx, finalPrompt)
	if err != nil {
		log.Fatalf("Unable to finish prompt: %v", err)
	}

	fmt.Println(text)
}
