package guardrails

import (
	"fmt"
	"unicode/utf8"
)

const DefaultMaxPromptLength = 2000

type LengthValidator struct {
	MaxLength int
}

func NewLengthValidator(maxLength int) *LengthValidator {
	return &LengthValidator{MaxLength: maxLength}
}

// Validate counts runes, not bytes. A MaxLength of 0 or less disables the check.
func (v *LengthValidator) Validate(prompt string) ValidationResult {
	if v == nil || v.MaxLength <= 0 {
		return ValidationResult{IsValid: true, Reason: "Length check disabled", Method: "length"}
	}

	length := utf8.RuneCountInString(prompt)
	if length > v.MaxLength {
		return ValidationResult{
			IsValid: false,
			Reason:  fmt.Sprintf("Prompt has %d characters, limit is %d", length, v.MaxLength),
			Method:  "length",
		}
	}

	return ValidationResult{IsValid: true, Reason: "Prompt length is acceptable", Method: "length"}
}
