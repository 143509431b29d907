package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/internal/service/i18n"
	"github.com/sandevgo/studykb/pkg/log"
)

// Populate inserts the bundled starter content into an empty store.
// A non-empty store is left alone so seeding is safe to re-run.
func Populate(ctx context.Context, repo core.QARepository) (int, error) {
	logger := log.FromCtx(ctx)

	stats, err := repo.Stats(ctx)
	if err != nil {
		return 0, err
	}
	if stats.TotalQA > 0 {
		logger.Info().Int("existing", stats.TotalQA).Msg("knowledge base not empty, skipping seed")
		return 0, nil
	}

	now := time.Now().UTC()
	added := 0

	add := func(question, answer, category string, tags []string) error {
		entry := core.QAEntry{
			ID:        uuid.NewString(),
			Question:  question,
			Answer:    answer,
			Category:  category,
			Tags:      tags,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Add(ctx, entry); err != nil {
			return err
		}
		added++
		return nil
	}

	for _, cat := range studentCategories {
		for _, qa := range cat.Samples {
			if err := add(qa.Question, qa.Answer, cat.Info.Key, qa.Tags); err != nil {
				return added, err
			}
		}
	}

	for subject, pairs := range i18n.AllKoreanQA() {
		for _, qa := range pairs {
			if err := add(qa.Question, qa.Answer, subject, qa.Tags); err != nil {
				return added, err
			}
		}
	}

	logger.Info().Int("added", added).Msg("seeded starter content")
	return added, nil
}
