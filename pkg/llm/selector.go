package llm

import (
	"context"
	"fmt"
)

// Chain tries a priority-ordered list of provider specs until one call
// succeeds. Selection is deterministic for a given configuration: there is no
// randomness and no load balancing, and a single provider is never retried
// beyond the transport's own behavior.
type Chain struct {
	specs       []ProviderSpec
	temperature float64
	verbose     bool
}

// NewChain constructs a fallback chain. Specs without a credential should be
// filtered out by the configuration layer before this point; an empty chain
// fails immediately with a *ChainExhaustedError.
func NewChain(specs []ProviderSpec, temperature float64, verbose bool) (chain *Chain, err error) {
	if len(specs) == 0 {
		err = &ChainExhaustedError{}
		return chain, err
	}

	for _, spec := range specs {
		if !spec.Kind.Valid() {
			err = &ProviderError{Model: spec.Model, Err: fmt.Errorf("unknown provider kind: %s", spec.Kind)}
			return chain, err
		}
	}

	chain = &Chain{
		specs:       specs,
		temperature: temperature,
		verbose:     verbose,
	}

	return chain, err
}

// Specs returns the configured provider chain in priority order.
func (ch *Chain) Specs() (specs []ProviderSpec) {
	specs = ch.specs
	return specs
}

// Complete walks the chain in priority order: construct a client, send the
// prompt, and return the first successful completion along with the model
// that produced it. Construction and call failures are logged and advance to
// the next spec; once the whole chain is exhausted the error names every
// attempted model.
func (ch *Chain) Complete(ctx context.Context, system, user string) (text string, model string, err error) {
	var attempted []string

	for _, spec := range ch.specs {
		attempted = append(attempted, spec.Model)

		var client *Client
		client, err = NewClient(spec, ch.temperature)
		if err != nil {
			if ch.verbose {
				fmt.Printf("Warning: provider %s unavailable: %v\n", spec.Model, err)
			}
			continue
		}

		text, err = client.Complete(ctx, system, user)
		if err != nil {
			if ch.verbose {
				fmt.Printf("Warning: provider %s failed: %v\n", spec.Model, err)
			}
			continue
		}

		model = spec.Model
		return text, model, err
	}

	text = ""
	err = &ChainExhaustedError{Attempted: attempted}
	return text, model, err
}

// Select returns a client for the first spec that constructs successfully,
// without making a network call. Used by setup verification.
func (ch *Chain) Select() (client *Client, err error) {
	var attempted []string

	for _, spec := range ch.specs {
		attempted = append(attempted, spec.Model)

		client, err = NewClient(spec, ch.temperature)
		if err == nil {
			return client, err
		}
	}

	client = nil
	err = &ChainExhaustedError{Attempted: attempted}
	return client, err
}
