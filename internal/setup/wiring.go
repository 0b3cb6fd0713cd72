package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/completion-agent/internal/api"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/auth"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/completion"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/database"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm/gpt"
	"github.com/rs/zerolog"
)

const (
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

type Config struct {
	Port     string
	LogLevel string

	RequireAuth      bool
	DatabaseURL      string
	DBMaxConns       int
	DBConnectRetries int

	Provider          string
	OpenAIKey         string
	OpenAIBaseURL     string
	AWSRegion         string
	ClaudeModelID     string
	Model             string
	CompletionTimeout time.Duration
	MaxPromptLength   int
}

type Dependencies struct {
	Completion *completion.Service
	Handler    *api.Handler
	DB         *database.DB
	Logger     *zerolog.Logger
}

// LoadConfig reads the environment once. Nothing is re-read per request.
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "80"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RequireAuth:       getEnvBool("REQUIRE_AUTH", true),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBMaxConns:        getEnvInt("DB_MAX_CONNS", 5),
		DBConnectRetries:  getEnvInt("DB_CONNECT_RETRIES", 5),
		Provider:          getEnv("COMPLETION_PROVIDER", ProviderOpenAI),
		OpenAIKey:         getEnv("OpenAI_Key", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", gpt.DefaultBaseURL),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		Model:             getEnv("COMPLETION_MODEL", completion.DefaultParams().Model),
		CompletionTimeout: getEnvDuration("COMPLETION_TIMEOUT", 30*time.Second),
		MaxPromptLength:   getEnvInt("MAX_PROMPT_LENGTH", guardrails.DefaultMaxPromptLength),
	}
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OpenAI_Key must be set")
		}
	case ProviderBedrock:
		if c.ClaudeModelID == "" {
			return fmt.Errorf("CLAUDE_MODEL_ID must be set for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown completion provider %q", c.Provider)
	}

	if c.RequireAuth && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set when REQUIRE_AUTH is enabled")
	}

	return nil
}

// WireCompletion builds the completion service alone, for binaries that do
// not serve HTTP.
func WireCompletion(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*completion.Service, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	params := completion.DefaultParams()
	params.Model = cfg.Model

	return completion.NewService(llmClient, params, cfg.CompletionTimeout, logger), nil
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	service, err := WireCompletion(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Completion: service,
		Logger:     logger,
	}

	var authorizer *auth.Authorizer
	var pinger api.Pinger
	if cfg.RequireAuth {
		db, err := database.NewWithBackoff(ctx, database.Config{
			URL:      cfg.DatabaseURL,
			MaxConns: int32(cfg.DBMaxConns),
		}, cfg.DBConnectRetries)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.DB = db
		authorizer = auth.NewAuthorizer(db, logger)
		pinger = db
	} else {
		logger.Warn().Msg("Auth disabled, every caller may request completions")
	}

	validator := guardrails.NewLengthValidator(cfg.MaxPromptLength)
	deps.Handler = api.NewHandler(service, authorizer, validator, pinger, logger)

	return deps, nil
}

func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.CompletionClient, error) {
	switch cfg.Provider {
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)
	}
}
