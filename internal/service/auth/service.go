package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

var (
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다")
	ErrSessionExpired     = errors.New("세션이 만료되었습니다")
)

// ValidationError carries a user-facing message for a rejected
// registration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Service implements registration, login and cookie-session
// resolution. Sessions live for SessionTTL from login; expired rows are
// deleted lazily on access and in bulk by Cleanup.
type Service struct {
	users      core.UserRepository
	sessions   core.SessionRepository
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(users core.UserRepository, sessions core.SessionRepository, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func validateRegistration(username, email, password string) error {
	if len([]rune(username)) < 3 {
		return &ValidationError{Field: "username", Message: "사용자명은 3자 이상이어야 합니다"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "올바른 이메일 주소를 입력해주세요"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "비밀번호는 6자 이상이어야 합니다"}
	}
	return nil
}

// Register creates a user account. Username and email are stored
// lowercased and must be unique.
func (s *Service) Register(ctx context.Context, username, email, password string) (*core.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateRegistration(username, email, password); err != nil {
		return nil, err
	}

	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	user := core.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
		CreatedAt:    s.now().UTC(),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicate) {
			return nil, &ValidationError{Field: "username", Message: "이미 사용 중인 사용자명 또는 이메일입니다"}
		}
		return nil, err
	}

	log.FromCtx(ctx).Info().Str("user_id", user.ID).Str("username", username).Msg("user registered")
	return &user, nil
}

// Login verifies credentials against a username or email and opens a
// new session. The same generic error covers unknown accounts and
// wrong passwords.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (*core.User, *core.Session, error) {
	login := strings.ToLower(strings.TrimSpace(usernameOrEmail))

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.IsActive || !verifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	session := core.Session{
		ID:        token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}
	user.LastLogin = &now

	log.FromCtx(ctx).Info().Str("user_id", user.ID).Msg("user logged in")
	return user, &session, nil
}

// Logout discards the session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// CurrentUser resolves a session token to its user. Expired sessions
// are deleted on sight.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*core.User, error) {
	if sessionID == "" {
		return nil, ErrSessionExpired
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionExpired
	}

	if !session.ExpiresAt.After(s.now().UTC()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to drop expired session")
		}
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrSessionExpired
	}
	return user, nil
}

// Cleanup removes all expired sessions.
func (s *Service) Cleanup(ctx context.Context) error {
	n, err := s.sessions.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return err
	}
	if n > 0 {
		log.FromCtx(ctx).Debug().Int64("sessions", n).Msg("cleaned up expired sessions")
	}
	return nil
}
