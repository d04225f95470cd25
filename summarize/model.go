package summarize

import (
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	DefaultOllamaURL = "http://127.0.0.1:11434/"
)

var defaultModels = map[Provider]string{
	ProviderGroq:   "gemma-7b-it",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "mistral-nemo",
}

// ModelFactory creates the model for one request, using that request's credential.
type ModelFactory interface {
	NewModel(credential string) (llms.Model, error)
}

type ModelFactoryFunc func(credential string) (llms.Model, error)

func (f ModelFactoryFunc) NewModel(credential string) (llms.Model, error) {
	return f(credential)
}

type ModelConfig struct {
	Provider Provider
	// Model defaults to a small instruction-tuned model for the provider.
	Model string
	// BaseURL overrides the OpenAI compatible endpoint for the groq and openai providers.
	BaseURL    string
	OllamaURL  string
	HTTPClient *http.Client
}

func (c ModelConfig) NewModel(credential string) (llms.Model, error) {
	provider := c.Provider
	if provider == "" {
		provider = ProviderGroq
	}
	model := c.Model
	if model == "" {
		model = defaultModels[provider]
	}
	switch provider {
	case ProviderGroq:
		baseURL := c.BaseURL
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		return c.openAI(credential, model, baseURL)
	case ProviderOpenAI:
		return c.openAI(credential, model, c.BaseURL)
	case ProviderOllama:
		serverURL := c.OllamaURL
		if serverURL == "" {
			serverURL = DefaultOllamaURL
		}
		opts := []ollama.Option{
			ollama.WithModel(model),
			ollama.WithServerURL(serverURL),
		}
		if c.HTTPClient != nil {
			opts = append(opts, ollama.WithHTTPClient(c.HTTPClient))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("summarize: failed to create ollama client: %w", err)
		}
		return llm, nil
	}
	return nil, fmt.Errorf("summarize: unknown provider %q", provider)
}

func (c ModelConfig) openAI(credential, model, baseURL string) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithToken(credential),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if c.HTTPClient != nil {
		opts = append(opts, openai.WithHTTPClient(c.HTTPClient))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("summarize: failed to create %s client: %w", c.Provider, err)
	}
	return llm, nil
}
