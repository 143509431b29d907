package core

import "time"

const (
	AppName       = "StudyKB"
	AppUserAgent  = "StudyKB/0.1"
	RepositoryURL = "https://github.com/sandevgo/studykb"
	Version       = "0.1.0"
)

// Category is a coarse subject label used to route prompt style,
// formatting and fallback templates.
type Category string

const (
	CategoryMath        Category = "수학"
	CategoryScience     Category = "과학"
	CategoryProgramming Category = "프로그래밍"
	CategoryKorean      Category = "국어"
	CategoryEnglish     Category = "영어"
	CategoryGeneral     Category = "일반"
)

func (c Category) String() string { return string(c) }

// QAEntry is a stored question/answer pair.
type QAEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reply is a threaded comment under a QAEntry.
type Reply struct {
	ID            string    `json:"id"`
	QAID          string    `json:"qa_id"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	Content       string    `json:"content"`
	ParentReplyID string    `json:"parent_reply_id,omitempty"`
	IsHelpful     bool      `json:"is_helpful"`
	HelpfulVotes  int       `json:"helpful_votes"`
	IsDeleted     bool      `json:"is_deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Salt         string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	IsActive     bool       `json:"is_active"`
}

type Session struct {
	ID        string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ContextItem is a read-only snapshot of a prior Q&A entry used as
// retrieval context. Immutable once retrieved.
type ContextItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// GeneratedAnswer is the output of one answer generation.
//
// Confidence is a policy constant per generation path (provider success
// vs. template fallback), not a measured quantity.
type GeneratedAnswer struct {
	Text       string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Category   Category `json:"category"`
	Sources    []string `json:"sources"`
	Reasoning  string   `json:"reasoning"`
}
