package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/studykb/pkg/log"
)

// ProvidersConfig carries the credentials for the answer generation
// chain. An empty key means the provider is skipped.
type ProvidersConfig struct {
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel    string `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	AnthropicKey   string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
}

func NewProvidersConfig(ctx context.Context) *ProvidersConfig {
	c := &ProvidersConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Providers config")
	}
	return c
}
