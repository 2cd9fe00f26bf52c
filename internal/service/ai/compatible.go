package ai

import (
	"context"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs such as
// DeepSeek, OpenRouter or Ollama.
type CompatibleProvider struct {
	client openai.Client
	model  string
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string, httpClient *http.Client) (*CompatibleProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	client := openai.NewClient(opts...)
	return &CompatibleProvider{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response without streaming.
func (p *CompatibleProvider) Complete(ctx context.Context, req Request) (string, error) {
	params := chatParams(p.model, req)
	params.MaxTokens = openai.Int(maxTokens(req))

	// Some gateways default to reasoning mode; suggestions never need it.
	resp, err := p.client.Chat.Completions.New(ctx, params, option.WithJSONSet("reasoning", map[string]interface{}{
		"enabled": false,
	}))
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}
