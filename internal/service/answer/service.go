package answer

import (
	"context"

	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

// AskResult is the full pipeline output handed to transports. The
// caller owns persistence and serialization.
type AskResult struct {
	Question  string               `json:"question"`
	Answer    core.GeneratedAnswer `json:"generated"`
	Formatted string               `json:"answer"`
	Category  core.Category        `json:"category"`
	Tools     map[string]any       `json:"tools"`
}

// Service runs the classify → retrieve → generate → format pipeline.
// It holds no per-request state; concurrent asks are independent.
type Service struct {
	retriever *Retriever
	generator *Generator
	formatter *Formatter
}

func NewService(retriever *Retriever, generator *Generator, formatter *Formatter) *Service {
	return &Service{
		retriever: retriever,
		generator: generator,
		formatter: formatter,
	}
}

func (s *Service) Ask(ctx context.Context, question string) AskResult {
	category := Classify(question)
	items := s.retriever.Retrieve(ctx, question, category)
	generated := s.generator.Generate(ctx, question, category, items)
	formatted := s.formatter.Format(generated.Text, category)

	log.FromCtx(ctx).Debug().
		Str("category", category.String()).
		Int("context_items", len(items)).
		Float64("confidence", generated.Confidence).
		Msg("answered question")

	return AskResult{
		Question:  question,
		Answer:    generated,
		Formatted: formatted,
		Category:  category,
		Tools:     CategoryTools(category),
	}
}
