package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxTokens bounds completion length for generation requests.
	DefaultMaxTokens = 8192

	// requestTimeout is the transport-level timeout for one model call. There
	// is no cancellation mechanism beyond this; callers wanting a shorter
	// deadline impose it through ctx.
	requestTimeout = 180 * time.Second
)

// Client calls a single OpenAI-compatible chat completions endpoint.
type Client struct {
	spec        ProviderSpec
	temperature float64
	httpClient  *http.Client
	endpoint    string
}

// NewClient constructs a client for one provider spec. Construction fails
// with a *ProviderError when the spec is unusable, which advances the
// fallback chain to the next provider.
func NewClient(spec ProviderSpec, temperature float64) (client *Client, err error) {
	if !spec.Kind.Valid() {
		err = &ProviderError{Model: spec.Model, Err: errors.Errorf("unknown provider kind: %s", spec.Kind)}
		return client, err
	}

	if spec.APIKey == "" {
		err = &ProviderError{Model: spec.Model, Err: errors.New("missing API key")}
		return client, err
	}

	if spec.BaseURL == "" {
		err = &ProviderError{Model: spec.Model, Err: errors.New("missing base URL")}
		return client, err
	}

	if spec.Model == "" {
		err = &ProviderError{Model: spec.Model, Err: errors.New("missing model identifier")}
		return client, err
	}

	client = &Client{
		spec:        spec,
		temperature: temperature,
		endpoint:    strings.TrimRight(spec.BaseURL, "/") + "/chat/completions",
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}

	return client, err
}

// Model returns the model identifier this client sends.
func (c *Client) Model() (model string) {
	model = c.spec.Model
	return model
}

// Kind returns the hosting backend this client talks to.
func (c *Client) Kind() (kind ProviderKind) {
	kind = c.spec.Kind
	return kind
}

// Complete sends a system and user prompt and returns the raw completion
// text. The response object is flattened into a plain string here, so the
// parsing pipeline never branches on response shape.
func (c *Client) Complete(ctx context.Context, system, user string) (text string, err error) {
	chatReq := ChatRequest{
		Model:       c.spec.Model,
		Temperature: c.temperature,
		MaxTokens:   DefaultMaxTokens,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	if c.spec.Thinking {
		chatReq.ChatTemplateKwargs = map[string]interface{}{
			"thinking": true,
		}
	}

	var reqBody []byte
	reqBody, err = json.Marshal(chatReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal chat request")
		return text, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return text, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.spec.APIKey)
	for key, value := range c.spec.Headers {
		httpReq.Header.Set(key, value)
	}

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return text, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return text, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return text, err
	}

	var chatResp ChatResponse
	err = json.Unmarshal(respBody, &chatResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse chat response: %s", string(respBody))
		return text, err
	}

	text, err = responseText(chatResp)
	return text, err
}

// responseText adapts a provider response into a plain string. Some backends
// return the answer in message.content, reasoning models occasionally leave
// content empty and put everything in reasoning_content.
func responseText(resp ChatResponse) (text string, err error) {
	if len(resp.Choices) == 0 {
		err = errors.New("no choices in chat response")
		return text, err
	}

	message := resp.Choices[0].Message
	text = message.Content
	if text == "" {
		text = message.ReasoningContent
	}

	if text == "" {
		err = errors.New("empty completion: no content or reasoning_content")
		return text, err
	}

	return text, err
}
