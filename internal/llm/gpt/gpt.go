package gpt

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
)

func (c *Client) Complete(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(request.Model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(request.Prompt),
		},
		MaxTokens:        openai.Int(int64(request.MaxTokens)),
		Temperature:      openai.Float(request.Temperature),
		TopP:             openai.Float(request.TopP),
		FrequencyPenalty: openai.Float(request.FrequencyPenalty),
		PresencePenalty:  openai.Float(request.PresencePenalty),
		Echo:             openai.Bool(request.Echo),
	}

	output, err := c.Client.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	response := &llm.CompletionResponse{
		Choices: make([]llm.Choice, 0, len(output.Choices)),
	}
	for _, choice := range output.Choices {
		response.Choices = append(response.Choices, llm.Choice{
			Text:         choice.Text,
			FinishReason: string(choice.FinishReason),
		})
	}

	return response, nil
}

// classify maps an SDK error onto the llm error kinds.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &llm.StatusError{StatusCode: apiErr.StatusCode, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", llm.ErrTimeout, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", llm.ErrTransport, err)
	}

	// Anything else comes from reading or parsing the body.
	return fmt.Errorf("%w: %w", llm.ErrDecode, err)
}
