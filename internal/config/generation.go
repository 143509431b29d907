package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/studykb/pkg/log"
)

// GenerationConfig holds the answer generation policy knobs.
//
// The confidence values are policy constants, not calibrated
// probabilities; they only distinguish provider answers from template
// fallbacks.
type GenerationConfig struct {
	ProviderConfidence float64       `env:"GEN_PROVIDER_CONFIDENCE" envDefault:"0.9"`
	FallbackConfidence float64       `env:"GEN_FALLBACK_CONFIDENCE" envDefault:"0.6"`
	ProviderTimeout    time.Duration `env:"GEN_PROVIDER_TIMEOUT" envDefault:"30s"`
	MaxTokens          int           `env:"GEN_MAX_TOKENS" envDefault:"1000"`
	Temperature        float64       `env:"GEN_TEMPERATURE" envDefault:"0.7"`
	PromptTokenBudget  int           `env:"GEN_PROMPT_TOKEN_BUDGET" envDefault:"3000"`
	DefaultCodeLang    string        `env:"GEN_DEFAULT_CODE_LANG" envDefault:"python"`
}

func NewGenerationConfig(ctx context.Context) *GenerationConfig {
	c := &GenerationConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Generation config")
	}
	return c
}
