package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/sandevgo/studykb/internal/core"
)

const sessionCookie = "session_id"

type contextKey string

const userContextKey contextKey = "current_user"

// requireAuth resolves the session cookie to a user and rejects the
// request when there is none.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.sessionUser(r)
		if user == nil {
			writeError(w, r, http.StatusUnauthorized, "로그인이 필요합니다")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

func (s *Server) sessionUser(r *http.Request) *core.User {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := s.auth.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return user
}

func currentUser(r *http.Request) *core.User {
	user, _ := r.Context().Value(userContextKey).(*core.User)
	return user
}

func setSessionCookie(w http.ResponseWriter, session *core.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
}
