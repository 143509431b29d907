package core

import (
	"context"
	"time"
)

type QARepository interface {
	Add(ctx context.Context, entry QAEntry) error
	GetByID(ctx context.Context, id string) (*QAEntry, error)
	// Search matches query as a case-insensitive substring of question,
	// answer or any tag, optionally filtered by category. Results come
	// back in store order.
	Search(ctx context.Context, query, category string) ([]QAEntry, error)
	All(ctx context.Context) ([]QAEntry, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (QAStats, error)
}

type ReplyRepository interface {
	Add(ctx context.Context, reply Reply) error
	GetByID(ctx context.Context, id string) (*Reply, error)
	// ForQA returns non-deleted replies for a Q&A pair, newest first.
	ForQA(ctx context.Context, qaID string) ([]Reply, error)
	UpdateContent(ctx context.Context, id, content string) error
	SoftDelete(ctx context.Context, id string) error
	ToggleHelpful(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (ReplyStats, error)
}

type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByLogin(ctx context.Context, usernameOrEmail string) (*User, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	Stats(ctx context.Context) (UserStats, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
}

type QAStats struct {
	TotalQA        int            `json:"total_qa"`
	Categories     []string       `json:"categories"`
	CategoryCounts map[string]int `json:"category_counts"`
	TopTags        []TagCount     `json:"top_tags"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type ReplyStats struct {
	TotalReplies    int               `json:"total_replies"`
	HelpfulReplies  int               `json:"helpful_replies"`
	TopContributors []ContributorRank `json:"top_contributors"`
}

type ContributorRank struct {
	Username string `json:"username"`
	Replies  int    `json:"replies"`
}

type UserStats struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	ActiveSessions int `json:"active_sessions"`
}
