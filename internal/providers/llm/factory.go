package llm

import (
	"context"

	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

// NewChain assembles the provider priority chain from configured
// credentials: OpenAI first, then Anthropic. Providers without a key
// are left out entirely; an empty chain is valid and means every
// answer comes from the template fallback.
func NewChain(ctx context.Context, cfg *config.ProvidersConfig) []core.Provider {
	var chain []core.Provider

	if cfg.OpenAIAPIKey != "" {
		chain = append(chain, NewOpenAI(OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}))
	}
	if cfg.AnthropicKey != "" {
		chain = append(chain, NewAnthropic(AnthropicConfig{
			APIKey: cfg.AnthropicKey,
			Model:  cfg.AnthropicModel,
		}))
	}

	names := make([]string, 0, len(chain))
	for _, p := range chain {
		names = append(names, p.Name())
	}
	log.FromCtx(ctx).Info().Strs("providers", names).Msg("assembled llm provider chain")

	return chain
}
