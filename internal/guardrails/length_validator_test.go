package guardrails

import (
	"strings"
	"testing"
)

func TestLengthValidator(t *testing.T) {
	tests := []struct {
		name       string
		maxLength  int
		prompt     string
		wantValid  bool
		wantReason string
	}{
		{
			name:       "disabled",
			maxLength:  0,
			prompt:     strings.Repeat("a", 10000),
			wantValid:  true,
			wantReason: "disabled",
		},
		{
			name:      "empty prompt",
			maxLength: 5,
			prompt:    "",
			wantValid: true,
		},
		{
			name:      "at the limit",
			maxLength: 5,
			prompt:    "abcde",
			wantValid: true,
		},
		{
			name:       "over the limit",
			maxLength:  5,
			prompt:     "abcdef",
			wantValid:  false,
			wantReason: "limit is 5",
		},
		{
			name:      "multibyte counted as runes",
			maxLength: 3,
			prompt:    "äöü",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLengthValidator(tt.maxLength).Validate(tt.prompt)
			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid: %v, want %v", got.IsValid, tt.wantValid)
			}
			if tt.wantReason != "" && !strings.Contains(got.Reason, tt.wantReason) {
				t.Errorf("Reason: %q, want substring %q", got.Reason, tt.wantReason)
			}
		})
	}
}
