package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultBaseURL = "https://api.openai.com/v1/"

type Client struct {
	Client  openai.Client
	BaseURL string
}

// NewClient builds a completions client. Retries are disabled: every call
// results in exactly one request to the provider.
func NewClient(apiKey string, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &Client{
		Client:  openaiClient,
		BaseURL: baseURL,
	}, nil
}
