package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/completion-agent/internal/llm/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestService_BuildRequest(t *testing.T) {
	service := NewService(nil, DefaultParams(), 0, testLogger())

	prompts := []string{"", "the sky is", `"quoted" \ {json}`, "Finish the Following: twice"}
	for _, prompt := range prompts {
		request := service.BuildRequest(prompt)

		if request.Prompt != "Finish the Following: "+prompt {
			t.Errorf("Prompt: got %q, want prelude + %q", request.Prompt, prompt)
		}
	}

	request := service.BuildRequest("x")
	expected := llm.CompletionRequest{
		Model:            "text-davinci-002",
		Prompt:           "Finish the Following: x",
		MaxTokens:        50,
		Temperature:      0.6,
		TopP:             1.0,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
		Echo:             false,
	}
	if request != expected {
		t.Errorf("Request: got %+v, want %+v", request, expected)
	}
}

func TestService_Complete(t *testing.T) {
	upstreamErr := &llm.StatusError{StatusCode: 500}

	tests := []struct {
		name        string
		response    *llm.CompletionResponse
		clientErr   error
		expectText  string
		expectErrIs error
	}{
		{
			name:       "first choice returned",
			response:   &llm.CompletionResponse{Choices: []llm.Choice{{Text: "hello"}, {Text: "ignored"}}},
			expectText: "hello",
		},
		{
			name:        "empty choices reported",
			response:    &llm.CompletionResponse{Choices: []llm.Choice{}},
			expectErrIs: llm.ErrEmptyChoices,
		},
		{
			name:        "upstream status propagated",
			clientErr:   upstreamErr,
			expectErrIs: llm.ErrUpstreamStatus,
		},
		{
			name:        "transport propagated",
			clientErr:   llm.ErrTransport,
			expectErrIs: llm.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockCompletionClient(ctrl)
			service := NewService(client, DefaultParams(), time.Second, testLogger())

			client.EXPECT().
				Complete(gomock.Any(), service.BuildRequest("prompt")).
				Return(tt.response, tt.clientErr).
				Times(1)

			text, err := service.Complete(context.Background(), "prompt")
			if !errors.Is(err, tt.expectErrIs) {
				t.Fatalf("Expected error %v, got %v", tt.expectErrIs, err)
			}
			if text != tt.expectText {
				t.Errorf("Expected %q, got %q", tt.expectText, text)
			}
		})
	}
}

func TestService_Complete_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCompletionClient(ctrl)
	service := NewService(client, DefaultParams(), 50*time.Millisecond, testLogger())

	client.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("Expected a deadline on the outbound context")
			}
			return &llm.CompletionResponse{Choices: []llm.Choice{{Text: "ok"}}}, nil
		})

	if _, err := service.Complete(context.Background(), "x"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
}

func TestService_Complete_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCompletionClient(ctrl)
	service := NewService(client, DefaultParams(), 0, testLogger())

	client.EXPECT().
		Complete(gomock.Any(), service.BuildRequest("same")).
		Return(&llm.CompletionResponse{Choices: []llm.Choice{{Text: "deterministic"}}}, nil).
		Times(2)

	first, err := service.Complete(context.Background(), "same")
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	second, err := service.Complete(context.Background(), "same")
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical results, got %q and %q", first, second)
	}
}
