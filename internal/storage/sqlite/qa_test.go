package sqlite

import (
	"context"
	"testing"

	"github.com/sandevgo/studykb/internal/core"
)

func seedQA(t *testing.T, repo *QARepo, entries ...core.QAEntry) {
	t.Helper()
	ctx := context.Background()
	for i := range entries {
		if entries[i].CreatedAt.IsZero() {
			entries[i].CreatedAt = testTime(t, 0)
			entries[i].UpdatedAt = entries[i].CreatedAt
		}
		if err := repo.Add(ctx, entries[i]); err != nil {
			t.Fatalf("Failed to seed qa entry: %v", err)
		}
	}
}

func TestQARepoAddGet(t *testing.T) {
	repo := NewQARepo(newTestDB(t))
	ctx := context.Background()

	seedQA(t, repo, core.QAEntry{
		ID:       "qa-1",
		Question: "이차방정식의 근의 공식은?",
		Answer:   "x = (-b ± √(b²-4ac)) / 2a",
		Category: "수학",
		Tags:     []string{"방정식", "공식"},
	})

	got, err := repo.GetByID(ctx, "qa-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil")
	}
	if got.Question != "이차방정식의 근의 공식은?" {
		t.Errorf("Question = %q", got.Question)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "방정식" {
		t.Errorf("Tags = %v", got.Tags)
	}
}

func TestQARepoGetMissing(t *testing.T) {
	repo := NewQARepo(newTestDB(t))

	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing entry, got %+v", got)
	}
}

func TestQARepoSearch(t *testing.T) {
	repo := NewQARepo(newTestDB(t))
	ctx := context.Background()

	seedQA(t, repo,
		core.QAEntry{ID: "1", Question: "미분이란 무엇인가요?", Answer: "변화율입니다", Category: "수학"},
		core.QAEntry{ID: "2", Question: "광합성 과정", Answer: "빛과 미분자가...", Category: "과학"},
		core.QAEntry{ID: "3", Question: "파이썬 설치", Answer: "python.org", Category: "프로그래밍", Tags: []string{"미분"}},
	)

	t.Run("matches question answer and tags", func(t *testing.T) {
		got, err := repo.Search(ctx, "미분", "")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %d entries, want 3", len(got))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := repo.Search(ctx, "미분", "수학")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, err := repo.Search(ctx, "존재하지않음", "")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d entries, want 0", len(got))
		}
	})
}

func TestQARepoStats(t *testing.T) {
	repo := NewQARepo(newTestDB(t))

	seedQA(t, repo,
		core.QAEntry{ID: "1", Question: "q1", Answer: "a1", Category: "수학", Tags: []string{"공식"}},
		core.QAEntry{ID: "2", Question: "q2", Answer: "a2", Category: "수학", Tags: []string{"공식", "기하"}},
		core.QAEntry{ID: "3", Question: "q3", Answer: "a3", Category: "과학"},
	)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalQA != 3 {
		t.Errorf("TotalQA = %d, want 3", stats.TotalQA)
	}
	if stats.CategoryCounts["수학"] != 2 || stats.CategoryCounts["과학"] != 1 {
		t.Errorf("CategoryCounts = %v", stats.CategoryCounts)
	}
	if len(stats.TopTags) == 0 || stats.TopTags[0].Tag != "공식" || stats.TopTags[0].Count != 2 {
		t.Errorf("TopTags = %v", stats.TopTags)
	}
}

func TestQARepoCategories(t *testing.T) {
	repo := NewQARepo(newTestDB(t))

	seedQA(t, repo,
		core.QAEntry{ID: "1", Question: "q", Answer: "a", Category: "수학"},
		core.QAEntry{ID: "2", Question: "q", Answer: "a", Category: "수학"},
		core.QAEntry{ID: "3", Question: "q", Answer: "a", Category: "과학"},
	)

	cats, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("got %v, want 2 distinct categories", cats)
	}
}
