package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/studykb/internal/core"
)

func newReplyRepo(t *testing.T) (*ReplyRepo, *sql.DB) {
	t.Helper()
	db := newTestDB(t)

	// Replies reference a qa entry.
	seedQA(t, NewQARepo(db), core.QAEntry{
		ID: "qa-1", Question: "q", Answer: "a", Category: "일반",
	})
	return NewReplyRepo(db), db
}

func addReply(t *testing.T, repo *ReplyRepo, reply core.Reply) {
	t.Helper()
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = testTime(t, 0)
		reply.UpdatedAt = reply.CreatedAt
	}
	if err := repo.Add(context.Background(), reply); err != nil {
		t.Fatalf("Failed to add reply: %v", err)
	}
}

func TestReplyRepoForQANewestFirst(t *testing.T) {
	repo, _ := newReplyRepo(t)
	ctx := context.Background()

	addReply(t, repo, core.Reply{
		ID: "r-old", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "먼저",
		CreatedAt: testTime(t, 0), UpdatedAt: testTime(t, 0),
	})
	addReply(t, repo, core.Reply{
		ID: "r-new", QAID: "qa-1", UserID: "u2", Username: "lee", Content: "나중",
		CreatedAt: testTime(t, time.Hour), UpdatedAt: testTime(t, time.Hour),
	})

	got, err := repo.ForQA(ctx, "qa-1")
	if err != nil {
		t.Fatalf("ForQA failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d replies, want 2", len(got))
	}
	if got[0].ID != "r-new" || got[1].ID != "r-old" {
		t.Errorf("order = [%s, %s], want newest first", got[0].ID, got[1].ID)
	}
}

func TestReplyRepoSoftDelete(t *testing.T) {
	repo, _ := newReplyRepo(t)
	ctx := context.Background()

	addReply(t, repo, core.Reply{ID: "r-1", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "삭제될 댓글"})

	if err := repo.SoftDelete(ctx, "r-1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	got, err := repo.ForQA(ctx, "qa-1")
	if err != nil {
		t.Fatalf("ForQA failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("soft-deleted reply still listed: %+v", got)
	}

	// Second delete finds nothing.
	if err := repo.SoftDelete(ctx, "r-1"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("second SoftDelete = %v, want ErrNotFound", err)
	}
}

func TestReplyRepoUpdateContent(t *testing.T) {
	repo, _ := newReplyRepo(t)
	ctx := context.Background()

	addReply(t, repo, core.Reply{ID: "r-1", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "원본"})

	if err := repo.UpdateContent(ctx, "r-1", "수정됨"); err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "r-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Content != "수정됨" {
		t.Errorf("Content = %q", got.Content)
	}

	if err := repo.UpdateContent(ctx, "missing", "x"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("UpdateContent on missing = %v, want ErrNotFound", err)
	}
}

func TestReplyRepoToggleHelpful(t *testing.T) {
	repo, _ := newReplyRepo(t)
	ctx := context.Background()

	addReply(t, repo, core.Reply{ID: "r-1", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "도움됨?"})

	on, err := repo.ToggleHelpful(ctx, "r-1")
	if err != nil {
		t.Fatalf("ToggleHelpful failed: %v", err)
	}
	if !on {
		t.Error("first toggle should turn helpful on")
	}

	got, _ := repo.GetByID(ctx, "r-1")
	if got.HelpfulVotes != 1 {
		t.Errorf("HelpfulVotes = %d, want 1", got.HelpfulVotes)
	}

	off, err := repo.ToggleHelpful(ctx, "r-1")
	if err != nil {
		t.Fatalf("ToggleHelpful failed: %v", err)
	}
	if off {
		t.Error("second toggle should turn helpful off")
	}

	got, _ = repo.GetByID(ctx, "r-1")
	if got.HelpfulVotes != 0 {
		t.Errorf("HelpfulVotes = %d, want 0", got.HelpfulVotes)
	}

	if _, err := repo.ToggleHelpful(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("ToggleHelpful on missing = %v, want ErrNotFound", err)
	}
}

func TestReplyRepoStats(t *testing.T) {
	repo, _ := newReplyRepo(t)
	ctx := context.Background()

	addReply(t, repo, core.Reply{ID: "r-1", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "a"})
	addReply(t, repo, core.Reply{ID: "r-2", QAID: "qa-1", UserID: "u1", Username: "kim", Content: "b"})
	addReply(t, repo, core.Reply{ID: "r-3", QAID: "qa-1", UserID: "u2", Username: "lee", Content: "c"})

	if _, err := repo.ToggleHelpful(ctx, "r-1"); err != nil {
		t.Fatal(err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalReplies != 3 {
		t.Errorf("TotalReplies = %d, want 3", stats.TotalReplies)
	}
	if stats.HelpfulReplies != 1 {
		t.Errorf("HelpfulReplies = %d, want 1", stats.HelpfulReplies)
	}
	if len(stats.TopContributors) == 0 || stats.TopContributors[0].Username != "kim" {
		t.Errorf("TopContributors = %v", stats.TopContributors)
	}
}
