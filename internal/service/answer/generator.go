package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

const fallbackReasoning = "기본 템플릿 기반 답변 (AI 서비스 미사용)"

// Generator produces an answer for a classified question. Providers
// are tried strictly in order; the first success wins. Every failure
// mode (network error, bad status, malformed body, timeout) advances
// the chain, and exhaustion lands on the category template, so
// Generate always returns a valid answer and never an error.
type Generator struct {
	providers []core.Provider
	cfg       *config.GenerationConfig
}

func NewGenerator(providers []core.Provider, cfg *config.GenerationConfig) *Generator {
	return &Generator{providers: providers, cfg: cfg}
}

func (g *Generator) Generate(ctx context.Context, question string, category core.Category, items []core.ContextItem) core.GeneratedAnswer {
	logger := log.FromCtx(ctx)

	sources := make([]string, 0, len(items))
	for _, item := range items {
		sources = append(sources, item.Question)
	}

	prompt := buildPrompt(question, category, items, g.cfg.PromptTokenBudget)

	req := core.CompletionRequest{
		Prompt:      prompt,
		System:      systemInstruction,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	for _, provider := range g.providers {
		text, err := g.tryProvider(ctx, provider, req)
		if err != nil {
			logger.Warn().Err(err).Str("provider", provider.Name()).Msg("provider failed, trying next")
			continue
		}

		return core.GeneratedAnswer{
			Text:       text,
			Confidence: g.cfg.ProviderConfidence,
			Category:   category,
			Sources:    sources,
			Reasoning:  fmt.Sprintf("%s를 사용한 답변", provider.Name()),
		}
	}

	return g.fallback(category, sources)
}

// tryProvider makes one attempt with a bounded timeout. No retries: a
// failed attempt immediately yields the next link in the chain.
func (g *Generator) tryProvider(ctx context.Context, provider core.Provider, req core.CompletionRequest) (text string, err error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.ProviderTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	text, err = provider.Complete(callCtx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("provider returned empty answer")
	}
	return text, nil
}

func (g *Generator) fallback(category core.Category, sources []string) core.GeneratedAnswer {
	text := FallbackTemplate(category)

	if len(sources) > 0 {
		var sb strings.Builder
		sb.WriteString(text)
		sb.WriteString("\n\n참고한 관련 질문들:\n")
		for i, src := range sources {
			if i >= maxContextItems {
				break
			}
			sb.WriteString("- " + src + "\n")
		}
		text = strings.TrimRight(sb.String(), "\n")
	}

	return core.GeneratedAnswer{
		Text:       text,
		Confidence: g.cfg.FallbackConfidence,
		Category:   category,
		Sources:    sources,
		Reasoning:  fallbackReasoning,
	}
}
