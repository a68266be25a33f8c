package llm

import (
	"fmt"
	"strings"
)

// ProviderError records a failure for a single provider in the chain. It is
// transient from the chain's point of view: the selector logs it and advances
// to the next spec.
type ProviderError struct {
	Model string
	Err   error
}

// Error implements the error interface.
func (e *ProviderError) Error() (msg string) {
	msg = fmt.Sprintf("provider %s failed: %v", e.Model, e.Err)
	return msg
}

// Unwrap returns the underlying failure.
func (e *ProviderError) Unwrap() (err error) {
	err = e.Err
	return err
}

// ChainExhaustedError is returned once every provider in the fallback chain
// has failed. It names every attempted model so the operator can see exactly
// which configurations were tried.
type ChainExhaustedError struct {
	Attempted []string
}

// Error implements the error interface.
func (e *ChainExhaustedError) Error() (msg string) {
	if len(e.Attempted) == 0 {
		msg = "no usable provider configured: set NVIDIA_API_KEY, OPENAI_API_KEY, or OPENROUTER_API_KEY"
		return msg
	}

	msg = fmt.Sprintf("all providers failed: %s", strings.Join(e.Attempted, ", "))
	return msg
}
