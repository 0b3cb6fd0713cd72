package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
	"github.com/rs/zerolog"
)

// Prelude is prepended verbatim to every caller prompt.
const Prelude = "Finish the Following: "

// Params are the fixed sampling settings sent with every request.
type Params struct {
	Model            string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Echo             bool
}

func DefaultParams() Params {
	return Params{
		Model:            "text-davinci-002",
		MaxTokens:        50,
		Temperature:      0.6,
		TopP:             1.0,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
		Echo:             false,
	}
}

type Service struct {
	client  llm.CompletionClient
	params  Params
	timeout time.Duration
	logger  *zerolog.Logger
}

func NewService(client llm.CompletionClient, params Params, timeout time.Duration, logger *zerolog.Logger) *Service {
	return &Service{
		client:  client,
		params:  params,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *Service) BuildRequest(prompt string) llm.CompletionRequest {
	return llm.CompletionRequest{
		Model:            s.params.Model,
		Prompt:           Prelude + prompt,
		MaxTokens:        s.params.MaxTokens,
		Temperature:      s.params.Temperature,
		TopP:             s.params.TopP,
		FrequencyPenalty: s.params.FrequencyPenalty,
		PresencePenalty:  s.params.PresencePenalty,
		Echo:             s.params.Echo,
	}
}

// Complete finishes prompt and returns the text of the first choice.
// Errors wrap one of the llm error kinds.
func (s *Service) Complete(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	request := s.BuildRequest(prompt)

	start := time.Now()
	response, err := s.client.Complete(ctx, request)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	text, err := response.FirstText()
	if err != nil {
		return "", fmt.Errorf("completion response unusable: %w", err)
	}

	s.logger.Debug().
		Str("model", request.Model).
		Int("prompt_length", len(request.Prompt)).
		Int("choices", len(response.Choices)).
		Dur("duration", time.Since(start)).
		Msg("Completion received")

	return text, nil
}
