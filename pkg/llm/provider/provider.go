// Package provider builds the configured llm.Model.
package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/config"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm/gemini"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm/openai"
)

// Named is a model that knows its model name, for the journal.
type Named interface {
	llm.Model
	Name() string
}

// New returns the model selected by LLM_PROVIDER.
func New(ctx context.Context, cfg config.Config) (Named, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini, "google", "":
		c, err := gemini.New(ctx, gemini.Config{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.LLMModel,
			Vertex:      cfg.GoogleUseVertexAI,
			Project:     cfg.GoogleCloudProject,
			Location:    cfg.GoogleCloudLocation,
			Temperature: cfg.LLMTemperature,
			Timeout:     cfg.LLMHTTPTimeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderOpenAI, "openrouter":
		c, err := openai.New(openai.Config{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.LLMModel,
			AppTitle:    cfg.OpenAIAppTitle,
			Referer:     cfg.OpenAIReferer,
			Temperature: cfg.LLMTemperature,
			Timeout:     cfg.LLMHTTPTimeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want gemini or openai)", cfg.LLMProvider)
	}
}

// Unavailable is a model that fails every call with the startup error, so the
// service can still serve probes and validation while misconfigured.
func Unavailable(provider string, cause error) Named {
	return unavailable{provider: provider, cause: cause}
}

type unavailable struct {
	provider string
	cause    error
}

func (u unavailable) Name() string { return "" }

func (u unavailable) Generate(context.Context, llm.Request) (json.RawMessage, error) {
	return nil, llm.Fail(u.provider, u.cause)
}
