package guardrails

type ValidationResult struct {
	IsValid bool   // true = allowed ; false = blocked
	Reason  string // Why the prompt was blocked
	Method  string // "length"
}
