package config

import (
	"os"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RouteRule maps a model-identifier substring to the backend that hosts it.
// The set of vendor prefixes grows over time, so routing is data, not code:
// rules are matched in order and the first hit wins.
type RouteRule struct {
	Match    string `yaml:"match"`
	Provider string `yaml:"provider"`
	Thinking bool   `yaml:"thinking"`
}

// routeFile is the on-disk shape of a route table override.
type routeFile struct {
	Routes []RouteRule `yaml:"routes"`
}

// DefaultRoutes returns the built-in routing table for explicit model
// requests: minimax-family models live on NVIDIA, gpt/o1 on OpenAI, deepseek
// on OpenRouter with thinking, everything else on OpenRouter.
func DefaultRoutes() (routes []RouteRule) {
	routes = []RouteRule{
		{Match: "minimax", Provider: string(llm.ProviderNVIDIA)},
		{Match: "gpt", Provider: string(llm.ProviderOpenAI)},
		{Match: "o1", Provider: string(llm.ProviderOpenAI)},
		{Match: "deepseek", Provider: string(llm.ProviderOpenRouter), Thinking: true},
	}
	return routes
}

// LoadRoutes reads a route table override from a YAML file and validates
// every rule against the closed provider set.
func LoadRoutes(path string) (routes []RouteRule, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read route table: %s", path)
		return routes, err
	}

	var file routeFile
	err = yaml.Unmarshal(data, &file)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse route table: %s", path)
		return routes, err
	}

	for i, rule := range file.Routes {
		if rule.Match == "" {
			err = errors.Errorf("route %d: match must not be empty", i)
			return routes, err
		}
		if !llm.ProviderKind(rule.Provider).Valid() {
			err = errors.Errorf("route %d: unknown provider: %s", i, rule.Provider)
			return routes, err
		}
	}

	routes = file.Routes
	return routes, err
}

// SpecForModel routes an explicitly requested model to a single provider
// spec using the rule table. Models matching no rule go to OpenRouter, the
// aggregator that hosts most third-party identifiers.
func SpecForModel(model string, routes []RouteRule) (spec llm.ProviderSpec, err error) {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}

	lowered := strings.ToLower(model)

	kind := llm.ProviderOpenRouter
	thinking := false
	for _, rule := range routes {
		if strings.Contains(lowered, strings.ToLower(rule.Match)) {
			kind = llm.ProviderKind(rule.Provider)
			thinking = rule.Thinking
			break
		}
	}

	switch kind {
	case llm.ProviderNVIDIA:
		key := os.Getenv("NVIDIA_API_KEY")
		if key == "" {
			err = errors.Errorf("NVIDIA_API_KEY required for model: %s", model)
			return spec, err
		}
		spec = llm.ProviderSpec{
			Kind:     llm.ProviderNVIDIA,
			Model:    model,
			BaseURL:  envOr("NVIDIA_BASE_URL", DefaultNVIDIABaseURL),
			APIKey:   key,
			Thinking: thinking,
		}

	case llm.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			err = errors.Errorf("OPENAI_API_KEY required for model: %s", model)
			return spec, err
		}
		spec = llm.ProviderSpec{
			Kind:    llm.ProviderOpenAI,
			Model:   model,
			BaseURL: DefaultOpenAIBaseURL,
			APIKey:  key,
		}

	case llm.ProviderOpenRouter:
		key := os.Getenv("OPENROUTER_API_KEY")
		if key == "" {
			err = errors.Errorf("OPENROUTER_API_KEY required for model: %s", model)
			return spec, err
		}
		baseEnv := "OPENROUTER_BASE_URL"
		if thinking {
			baseEnv = "FALLBACK_BASE_URL"
		}
		spec = llm.ProviderSpec{
			Kind:     llm.ProviderOpenRouter,
			Model:    model,
			BaseURL:  envOr(baseEnv, DefaultOpenRouterBaseURL),
			APIKey:   key,
			Headers:  openRouterHeaders(),
			Thinking: thinking && thinkingEnabled(),
		}

	default:
		err = errors.Errorf("unknown provider kind in route table: %s", kind)
		return spec, err
	}

	return spec, err
}
