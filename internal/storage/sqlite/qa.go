package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/studykb/internal/core"
)

type QARepo struct {
	db *sql.DB
}

func NewQARepo(db *sql.DB) *QARepo {
	return &QARepo{db: db}
}

// Tags are stored as a comma-joined string; commas inside tags are not
// supported.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (r *QARepo) Add(ctx context.Context, entry core.QAEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO qa_entries (id, question, answer, category, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Question, entry.Answer, entry.Category,
		joinTags(entry.Tags), entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert qa entry: %w", err)
	}
	return nil
}

func (r *QARepo) GetByID(ctx context.Context, id string) (*core.QAEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, question, answer, category, tags, created_at, updated_at
		 FROM qa_entries WHERE id = ?`, id)

	entry, err := scanQA(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *QARepo) Search(ctx context.Context, query, category string) ([]core.QAEntry, error) {
	q := `SELECT id, question, answer, category, tags, created_at, updated_at
	      FROM qa_entries
	      WHERE (question LIKE ? OR answer LIKE ? OR tags LIKE ?)`
	like := "%" + query + "%"
	args := []any{like, like, like}

	if category != "" {
		q += " AND category = ?"
		args = append(args, category)
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("qa search failed: %w", err)
	}
	defer rows.Close()

	return collectQA(rows)
}

func (r *QARepo) All(ctx context.Context) ([]core.QAEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, answer, category, tags, created_at, updated_at
		 FROM qa_entries ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectQA(rows)
}

func (r *QARepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM qa_entries ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *QARepo) Stats(ctx context.Context) (core.QAStats, error) {
	stats := core.QAStats{CategoryCounts: map[string]int{}}

	rows, err := r.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM qa_entries GROUP BY category ORDER BY category ASC`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return stats, err
		}
		stats.Categories = append(stats.Categories, cat)
		stats.CategoryCounts[cat] = n
		stats.TotalQA += n
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	tags, err := r.topTags(ctx, 10)
	if err != nil {
		return stats, err
	}
	stats.TopTags = tags

	return stats, nil
}

// topTags counts tags in Go because the comma-joined column cannot be
// grouped in SQL.
func (r *QARepo) topTags(ctx context.Context, limit int) ([]core.TagCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tags FROM qa_entries WHERE tags != ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		for _, tag := range splitTags(raw) {
			counts[tag]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]core.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, core.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQA(row rowScanner) (*core.QAEntry, error) {
	var e core.QAEntry
	var tags string
	if err := row.Scan(&e.ID, &e.Question, &e.Answer, &e.Category, &tags, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Tags = splitTags(tags)
	return &e, nil
}

func collectQA(rows *sql.Rows) ([]core.QAEntry, error) {
	var entries []core.QAEntry
	for rows.Next() {
		e, err := scanQA(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
