package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/guardrails"
	"github.com/rs/zerolog"
)

var (
	ErrPromptTooLong    = errors.New("prompt is too long, try a shorter one")
	ErrCompletionFailed = errors.New("completion failed, try again later")
)

// Completer is implemented by *completion.Service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// FinishInput is the MCP tool input schema.
type FinishInput struct {
	Prompt string `json:"prompt" jsonschema:"text to finish"`
}

// FinishOutput is the MCP tool output schema.
type FinishOutput struct {
	Text string `json:"text" jsonschema:"completion text"`
}

// NewFinishHandler returns a tool handler backed by the given completer.
// Pass the returned function to mcp.AddTool.
func NewFinishHandler(completer Completer, validator *guardrails.LengthValidator, logger *zerolog.Logger) func(context.Context, *mcp.CallToolRequest, FinishInput) (*mcp.CallToolResult, FinishOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FinishInput) (*mcp.CallToolResult, FinishOutput, error) {
		return FinishPrompt(ctx, completer, validator, logger, input)
	}
}

// FinishPrompt runs one completion. Upstream details are logged, not returned.
func FinishPrompt(
	ctx context.Context,
	completer Completer,
	validator *guardrails.LengthValidator,
	logger *zerolog.Logger,
	input FinishInput,
) (*mcp.CallToolResult, FinishOutput, error) {
	if result := validator.Validate(input.Prompt); !result.IsValid {
		return nil, FinishOutput{}, ErrPromptTooLong
	}

	text, err := completer.Complete(ctx, input.Prompt)
	if err != nil {
		logger.Error().Err(err).Msg("MCP completion failed")
		return nil, FinishOutput{}, ErrCompletionFailed
	}

	return nil, FinishOutput{Text: text}, nil
}
