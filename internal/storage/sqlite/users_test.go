package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/studykb/internal/core"
)

func testUser(id, username, email string) core.User {
	return core.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Salt:         "salt",
		CreatedAt:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func TestUserRepoCreateAndLogin(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("u-1", "student1", "s1@school.kr")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("by username", func(t *testing.T) {
		got, err := repo.GetByLogin(ctx, "student1")
		if err != nil {
			t.Fatalf("GetByLogin failed: %v", err)
		}
		if got == nil || got.ID != "u-1" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("by email", func(t *testing.T) {
		got, err := repo.GetByLogin(ctx, "s1@school.kr")
		if err != nil {
			t.Fatalf("GetByLogin failed: %v", err)
		}
		if got == nil || got.ID != "u-1" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := repo.GetByLogin(ctx, "STUDENT1")
		if err != nil {
			t.Fatalf("GetByLogin failed: %v", err)
		}
		if got == nil || got.ID != "u-1" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown login", func(t *testing.T) {
		got, err := repo.GetByLogin(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetByLogin failed: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}

func TestUserRepoDuplicates(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("u-1", "student1", "s1@school.kr")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name string
		user core.User
	}{
		{"same username", testUser("u-2", "student1", "other@school.kr")},
		{"same username different case", testUser("u-3", "Student1", "third@school.kr")},
		{"same email", testUser("u-4", "another", "s1@school.kr")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(ctx, tt.user); !errors.Is(err, core.ErrDuplicate) {
				t.Errorf("Create = %v, want ErrDuplicate", err)
			}
		})
	}
}

func TestUserRepoSetLastLogin(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("u-1", "student1", "s1@school.kr")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	at := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	if err := repo.SetLastLogin(ctx, "u-1", at); err != nil {
		t.Fatalf("SetLastLogin failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LastLogin == nil || !got.LastLogin.Equal(at) {
		t.Errorf("LastLogin = %v, want %v", got.LastLogin, at)
	}

	if err := repo.SetLastLogin(ctx, "missing", at); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("SetLastLogin on missing = %v, want ErrNotFound", err)
	}
}

func TestUserRepoStats(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("u-1", "a", "a@x.kr")); err != nil {
		t.Fatal(err)
	}
	inactive := testUser("u-2", "b", "b@x.kr")
	inactive.IsActive = false
	if err := repo.Create(ctx, inactive); err != nil {
		t.Fatal(err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalUsers != 2 || stats.ActiveUsers != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
