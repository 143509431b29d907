package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/internal/service/auth"
	"github.com/sandevgo/studykb/pkg/log"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userPayload(user *core.User) map[string]any {
	return map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		log.FromCtx(r.Context()).Error().Err(err).Msg("registration failed")
		writeError(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	// Registration logs the user straight in.
	_, session, err := s.auth.Login(r.Context(), user.Username, req.Password)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("post-registration login failed")
		writeError(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Registration successful",
		"user":    userPayload(user),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, session, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.FromCtx(r.Context()).Error().Err(err).Msg("login failed")
		writeError(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	setSessionCookie(w, session)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user":    userPayload(user),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if err := s.auth.Logout(r.Context(), cookie.Value); err != nil {
			log.FromCtx(r.Context()).Warn().Err(err).Msg("failed to delete session")
		}
	}

	clearSessionCookie(w)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out successfully",
	})
}

// handleMe reports session state without requiring one.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := s.sessionUser(r)
	if user == nil {
		writeJSON(w, r, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
			"last_login": user.LastLogin,
		},
	})
}
