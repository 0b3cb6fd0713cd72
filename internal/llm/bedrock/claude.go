package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
)

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

var anthropicVersion = "bedrock-2023-05-31"

// Complete sends the prompt as a single user message. Claude has no
// frequency/presence penalties or echo, those fields are not sent. The
// configured ModelID takes precedence over request.Model.
func (c *Client) Complete(ctx context.Context, request llm.CompletionRequest) (*llm.CompletionResponse, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		TopP:             request.TopP,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: request.Prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize claude request. Error: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, classify(err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("%w: %w", llm.ErrDecode, err)
	}

	completion := &llm.CompletionResponse{}
	for _, block := range response.Content {
		if block.Type != "" && block.Type != "text" {
			continue
		}
		completion.Choices = append(completion.Choices, llm.Choice{
			Text:         block.Text,
			FinishReason: response.StopReason,
		})
	}

	return completion, nil
}

// httpStatusError is implemented by the SDK's response errors.
type httpStatusError interface {
	HTTPStatusCode() int
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", llm.ErrTimeout, err)
	}

	var statusErr httpStatusError
	if errors.As(err, &statusErr) && statusErr.HTTPStatusCode() != 0 {
		return &llm.StatusError{StatusCode: statusErr.HTTPStatusCode(), Err: err}
	}

	return fmt.Errorf("%w: %w", llm.ErrTransport, err)
}
