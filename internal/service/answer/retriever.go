package answer

import (
	"context"

	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

// maxContextItems caps how many prior Q&A pairs feed a prompt.
const maxContextItems = 3

// Retriever looks up prior Q&A entries to ground a generated answer.
type Retriever struct {
	repo core.QARepository
}

func NewRetriever(repo core.QARepository) *Retriever {
	return &Retriever{repo: repo}
}

// Retrieve returns up to 3 context items for the question, in store
// order. A missing store, a store error or no matches all yield an
// empty slice; context-free generation is a valid state, not an
// error.
func (r *Retriever) Retrieve(ctx context.Context, question string, category core.Category) []core.ContextItem {
	if r == nil || r.repo == nil {
		return nil
	}

	entries, err := r.repo.Search(ctx, question, category.String())
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("context search failed, generating without context")
		return nil
	}

	if len(entries) > maxContextItems {
		entries = entries[:maxContextItems]
	}

	items := make([]core.ContextItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, core.ContextItem{
			Question: e.Question,
			Answer:   e.Answer,
			Category: e.Category,
			Tags:     e.Tags,
		})
	}
	return items
}
