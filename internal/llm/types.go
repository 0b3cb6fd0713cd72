package llm

// CompletionRequest mirrors the body of a text completion call.
type CompletionRequest struct {
	Model            string
	Prompt           string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Echo             bool
}

type Choice struct {
	Text         string
	FinishReason string
}

type CompletionResponse struct {
	Choices []Choice
}

// FirstText returns the text of the first choice. Providers may answer with
// no choices at all, which is reported as ErrEmptyChoices.
func (r *CompletionResponse) FirstText() (string, error) {
	if r == nil || len(r.Choices) == 0 {
		return "", ErrEmptyChoices
	}

	return r.Choices[0].Text, nil
}
