package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hireloop/takehome-forge/pkg/llm"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Default endpoints and models for each backend. Overridable per environment
// variable; see ProviderChain.
const (
	DefaultNVIDIABaseURL     = "https://integrate.api.nvidia.com/v1"
	DefaultNVIDIAModel       = "deepseek-ai/deepseek-v3.1-terminus"
	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultFallbackModel     = "deepseek-ai/deepseek-v3.1-terminus"
	DefaultLastResortModel   = "z-ai/glm-4.5-air:free"
)

// LoadEnvFiles loads .env files in precedence order: the working directory's
// .env first, then an explicit --env-file, then .env.<profile>. Later files
// override earlier ones. Missing files are not an error; profiles that do
// not exist produce a warning so typos are visible.
func LoadEnvFiles(envFile, profile string) (err error) {
	// Base .env is optional.
	_ = godotenv.Load()

	if envFile != "" {
		err = godotenv.Overload(envFile)
		if err != nil {
			err = errors.Wrapf(err, "failed to load env file: %s", envFile)
			return err
		}
	}

	if profile != "" {
		profilePath := ".env." + profile
		_, statErr := os.Stat(profilePath)
		if os.IsNotExist(statErr) {
			fmt.Fprintf(os.Stderr, "Warning: profile file not found: %s\n", profilePath)
			return err
		}

		err = godotenv.Overload(profilePath)
		if err != nil {
			err = errors.Wrapf(err, "failed to load profile file: %s", profilePath)
			return err
		}
	}

	return err
}

// Temperature returns the sampling temperature from the environment, or the
// given default when unset or unparseable.
func Temperature(fallback float64) (temperature float64) {
	temperature = fallback

	raw := os.Getenv("LLM_TEMPERATURE")
	if raw == "" {
		raw = os.Getenv("OPENAI_TEMPERATURE")
	}
	if raw == "" {
		return temperature
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return temperature
	}

	temperature = parsed
	return temperature
}

// thinkingEnabled reports whether extended reasoning mode is requested for
// DeepSeek-style models. Defaults to on, matching the primary chain entry.
func thinkingEnabled() (enabled bool) {
	raw := strings.ToLower(os.Getenv("DEEPSEEK_THINKING"))
	enabled = raw != "false" && raw != "0" && raw != "off"
	return enabled
}

// openRouterHeaders builds the optional OpenRouter attribution headers.
func openRouterHeaders() (headers map[string]string) {
	headers = map[string]string{}
	if site := os.Getenv("OPENROUTER_SITE_URL"); site != "" {
		headers["HTTP-Referer"] = site
	}
	if app := os.Getenv("OPENROUTER_APP_NAME"); app != "" {
		headers["X-Title"] = app
	}
	return headers
}

// envOr returns the value of key, or fallback when unset or empty.
func envOr(key, fallback string) (value string) {
	value = os.Getenv(key)
	if value == "" {
		value = fallback
	}
	return value
}

// ProviderChain builds the priority-ordered fallback chain from environment
// configuration:
//
//  1. NVIDIA (DeepSeek with thinking) when NVIDIA_API_KEY is set
//  2. OpenAI when OPENAI_API_KEY is set
//  3. OpenRouter DeepSeek (thinking) when OPENROUTER_API_KEY is set
//  4. OpenRouter last-resort model, same credential
//
// A provider whose credential is absent is silently omitted rather than
// erroring; an entirely empty chain is only surfaced once a request actually
// exhausts it.
func ProviderChain() (specs []llm.ProviderSpec) {
	if nvidiaKey := os.Getenv("NVIDIA_API_KEY"); nvidiaKey != "" {
		model := envOr("DEFAULT_MODEL", DefaultNVIDIAModel)
		specs = append(specs, llm.ProviderSpec{
			Kind:     llm.ProviderNVIDIA,
			Model:    model,
			BaseURL:  envOr("NVIDIA_BASE_URL", DefaultNVIDIABaseURL),
			APIKey:   nvidiaKey,
			Thinking: strings.Contains(strings.ToLower(model), "deepseek") && thinkingEnabled(),
		})
	}

	if openaiKey := os.Getenv("OPENAI_API_KEY"); openaiKey != "" {
		specs = append(specs, llm.ProviderSpec{
			Kind:    llm.ProviderOpenAI,
			Model:   envOr("OPENAI_MODEL", DefaultOpenAIModel),
			BaseURL: DefaultOpenAIBaseURL,
			APIKey:  openaiKey,
		})
	}

	if openRouterKey := os.Getenv("OPENROUTER_API_KEY"); openRouterKey != "" {
		specs = append(specs, llm.ProviderSpec{
			Kind:     llm.ProviderOpenRouter,
			Model:    envOr("FALLBACK_MODEL", DefaultFallbackModel),
			BaseURL:  envOr("FALLBACK_BASE_URL", DefaultOpenRouterBaseURL),
			APIKey:   openRouterKey,
			Headers:  openRouterHeaders(),
			Thinking: thinkingEnabled(),
		})

		specs = append(specs, llm.ProviderSpec{
			Kind:    llm.ProviderOpenRouter,
			Model:   envOr("OPENROUTER_FALLBACK_MODEL", DefaultLastResortModel),
			BaseURL: envOr("OPENROUTER_BASE_URL", DefaultOpenRouterBaseURL),
			APIKey:  openRouterKey,
			Headers: openRouterHeaders(),
		})
	}

	return specs
}

// ChainForModel resolves the chain for a request. With no explicit model the
// full fallback chain applies; an explicit model is routed to a single spec
// through the route table.
func ChainForModel(model string, routes []RouteRule) (specs []llm.ProviderSpec, err error) {
	if model == "" {
		specs = ProviderChain()
		return specs, err
	}

	var spec llm.ProviderSpec
	spec, err = SpecForModel(model, routes)
	if err != nil {
		return specs, err
	}

	specs = []llm.ProviderSpec{spec}
	return specs, err
}

// DefaultRoutesPath is where LoadRoutesIfPresent looks for an override table.
const DefaultRoutesPath = "routes.yaml"

// LoadRoutesIfPresent returns the route table from path when the file
// exists, falling back to the built-in rules otherwise.
func LoadRoutesIfPresent(path string) (routes []RouteRule, err error) {
	if path == "" {
		path = DefaultRoutesPath
	}

	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		routes = DefaultRoutes()
		return routes, err
	}

	routes, err = LoadRoutes(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to load route table: %s", filepath.Clean(path))
		return routes, err
	}

	return routes, err
}
