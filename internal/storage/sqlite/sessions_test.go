package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sandevgo/studykb/internal/core"
)

func newSessionRepo(t *testing.T) (*SessionRepo, *sql.DB) {
	t.Helper()
	db := newTestDB(t)

	repo := NewUserRepo(db)
	if err := repo.Create(context.Background(), testUser("u-1", "student1", "s1@school.kr")); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return NewSessionRepo(db), db
}

func TestSessionRepoLifecycle(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	session := core.Session{
		ID:        "sess-1",
		UserID:    "u-1",
		CreatedAt: now,
		ExpiresAt: now.Add(30 * 24 * time.Hour),
	}

	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.UserID != "u-1" {
		t.Errorf("got %+v", got)
	}

	if err := repo.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("session still present after delete: %+v", got)
	}
}

func TestSessionRepoDeleteExpired(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	sessions := []core.Session{
		{ID: "expired-1", UserID: "u-1", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{ID: "expired-2", UserID: "u-1", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now},
		{ID: "live", UserID: "u-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	for _, s := range sessions {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	n, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d sessions, want 2", n)
	}

	active, err := repo.CountActive(ctx, now)
	if err != nil {
		t.Fatalf("CountActive failed: %v", err)
	}
	if active != 1 {
		t.Errorf("CountActive = %d, want 1", active)
	}
}
