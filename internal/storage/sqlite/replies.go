package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/studykb/internal/core"
)

type ReplyRepo struct {
	db *sql.DB
}

func NewReplyRepo(db *sql.DB) *ReplyRepo {
	return &ReplyRepo{db: db}
}

func (r *ReplyRepo) Add(ctx context.Context, reply core.Reply) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO replies (id, qa_id, user_id, username, content, parent_reply_id,
		                      is_helpful, helpful_votes, is_deleted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reply.ID, reply.QAID, reply.UserID, reply.Username, reply.Content,
		reply.ParentReplyID, reply.IsHelpful, reply.HelpfulVotes, reply.IsDeleted,
		reply.CreatedAt, reply.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reply: %w", err)
	}
	return nil
}

func (r *ReplyRepo) GetByID(ctx context.Context, id string) (*core.Reply, error) {
	row := r.db.QueryRowContext(ctx, selectReply+` WHERE id = ?`, id)

	reply, err := scanReply(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (r *ReplyRepo) ForQA(ctx context.Context, qaID string) ([]core.Reply, error) {
	rows, err := r.db.QueryContext(ctx,
		selectReply+` WHERE qa_id = ? AND is_deleted = 0 ORDER BY created_at DESC`, qaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []core.Reply
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, *reply)
	}
	return replies, rows.Err()
}

func (r *ReplyRepo) UpdateContent(ctx context.Context, id, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE replies SET content = ?, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		content, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SoftDelete keeps the row so threads under it stay attached.
func (r *ReplyRepo) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE replies SET is_deleted = 1, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ToggleHelpful flips the helpful flag and adjusts the vote counter,
// which never drops below zero. Returns the new flag state.
func (r *ReplyRepo) ToggleHelpful(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var helpful bool
	var votes int
	err = tx.QueryRowContext(ctx,
		`SELECT is_helpful, helpful_votes FROM replies WHERE id = ? AND is_deleted = 0`, id).
		Scan(&helpful, &votes)
	if errors.Is(err, sql.ErrNoRows) {
		return false, core.ErrNotFound
	}
	if err != nil {
		return false, err
	}

	helpful = !helpful
	if helpful {
		votes++
	} else if votes > 0 {
		votes--
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE replies SET is_helpful = ?, helpful_votes = ?, updated_at = ? WHERE id = ?`,
		helpful, votes, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}

	return helpful, tx.Commit()
}

func (r *ReplyRepo) Stats(ctx context.Context) (core.ReplyStats, error) {
	var stats core.ReplyStats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_helpful), 0) FROM replies WHERE is_deleted = 0`).
		Scan(&stats.TotalReplies, &stats.HelpfulReplies)
	if err != nil {
		return stats, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT username, COUNT(*) AS n FROM replies WHERE is_deleted = 0
		 GROUP BY username ORDER BY n DESC, username ASC LIMIT 5`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var rank core.ContributorRank
		if err := rows.Scan(&rank.Username, &rank.Replies); err != nil {
			return stats, err
		}
		stats.TopContributors = append(stats.TopContributors, rank)
	}
	return stats, rows.Err()
}

const selectReply = `SELECT id, qa_id, user_id, username, content, parent_reply_id,
       is_helpful, helpful_votes, is_deleted, created_at, updated_at
FROM replies`

func scanReply(row rowScanner) (*core.Reply, error) {
	var reply core.Reply
	err := row.Scan(&reply.ID, &reply.QAID, &reply.UserID, &reply.Username,
		&reply.Content, &reply.ParentReplyID, &reply.IsHelpful,
		&reply.HelpfulVotes, &reply.IsDeleted, &reply.CreatedAt, &reply.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
