package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// modelInvoker is the subset of *bedrockruntime.Client used here.
type modelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	Client  modelInvoker
	ModelID string
}

func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("Bedrock model ID is required")
	}

	// One attempt per call, the SDK retries by default.
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region), config.WithRetryMaxAttempts(1))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return &Client{
		Client:  bedrockruntime.NewFromConfig(cfg),
		ModelID: modelID,
	}, nil
}
