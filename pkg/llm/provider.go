package llm

// ProviderKind identifies a hosting backend. The set is closed: invalid
// provider names are rejected when the chain is built, not at call time.
type ProviderKind string

const (
	// ProviderNVIDIA is the NVIDIA inference endpoint (OpenAI-compatible).
	ProviderNVIDIA ProviderKind = "nvidia"
	// ProviderOpenAI is the standard OpenAI API.
	ProviderOpenAI ProviderKind = "openai"
	// ProviderOpenRouter is the OpenRouter aggregation endpoint.
	ProviderOpenRouter ProviderKind = "openrouter"
)

// Valid reports whether the kind is a member of the closed provider set.
func (k ProviderKind) Valid() (valid bool) {
	switch k {
	case ProviderNVIDIA, ProviderOpenAI, ProviderOpenRouter:
		valid = true
	}
	return valid
}

// ProviderSpec identifies one backend/model combination in a priority-ordered
// fallback chain. Specs are constructed once per invocation from environment
// configuration and never persisted.
type ProviderSpec struct {
	Kind    ProviderKind
	Model   string
	BaseURL string
	APIKey  string

	// Headers carries provider-specific attribution headers, such as
	// OpenRouter's HTTP-Referer and X-Title.
	Headers map[string]string

	// Thinking enables the extended reasoning mode on models that support it.
	Thinking bool
}
