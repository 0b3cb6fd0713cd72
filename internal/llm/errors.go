package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the provider could not be reached
	// (connection refused, DNS, TLS).
	ErrTransport = errors.New("llm: transport failure")

	// ErrTimeout is returned when the call did not finish before its deadline.
	ErrTimeout = errors.New("llm: request timed out")

	// ErrUpstreamStatus is returned for any non-2xx answer. The concrete
	// error is a *StatusError.
	ErrUpstreamStatus = errors.New("llm: unexpected upstream status")

	// ErrDecode is returned when the response body is not a valid completion.
	ErrDecode = errors.New("llm: undecodable response")

	// ErrEmptyChoices is returned when the completion list is empty.
	ErrEmptyChoices = errors.New("llm: no choices in response")
)

// StatusError carries the HTTP status code of a failed provider call.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm: upstream returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm: upstream returned status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}
