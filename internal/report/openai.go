// ABOUTME: OpenAI-compatible chat completion Generator.
// ABOUTME: Works with any endpoint speaking the OpenAI API via a custom base URL.
package report

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/logging"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// ErrMissingAPIKey is returned when no provider credential is configured.
var ErrMissingAPIKey = errors.New("no API key configured (set WELLNESS_API_KEY)")

// OpenAIConfig configures OpenAIGenerator.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIGenerator sends one chat completion request per Generate call.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

var _ Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a generator for the configured endpoint.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Model returns the model identifier requests are sent with.
func (g *OpenAIGenerator) Model() string {
	return g.model
}

// Generate sends prompt as a single user message and returns the cleaned
// response text. Any failure is returned as a *GenerationError.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logging.For("report").WithField("model", g.model)
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.WithError(err).Error("chat completion failed")
		return "", &GenerationError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}
	content := Clean(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}

	log.WithField("elapsed", time.Since(start)).Debug("report generated")
	return content, nil
}
