package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sandevgo/studykb/internal/core"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user core.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, salt, created_at, last_login, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Salt,
		user.CreatedAt, user.LastLogin, user.IsActive,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return core.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*core.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = ?`, id)
}

// GetByLogin resolves a user by username or email, case-insensitively.
func (r *UserRepo) GetByLogin(ctx context.Context, usernameOrEmail string) (*core.User, error) {
	return r.getOne(ctx, selectUser+` WHERE username = ? OR email = ?`, usernameOrEmail, usernameOrEmail)
}

func (r *UserRepo) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`, at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *UserRepo) Stats(ctx context.Context) (core.UserStats, error) {
	var stats core.UserStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_active), 0) FROM users`).
		Scan(&stats.TotalUsers, &stats.ActiveUsers)
	return stats, err
}

const selectUser = `SELECT id, username, email, password_hash, salt, created_at, last_login, is_active
FROM users`

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Salt,
			&u.CreatedAt, &u.LastLogin, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
