// Package httpapi exposes the knowledge base over a JSON HTTP API.
// Authentication is a session_id cookie issued by login.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/internal/service/answer"
	"github.com/sandevgo/studykb/internal/service/auth"
	"github.com/sandevgo/studykb/pkg/log"
)

type Server struct {
	cfg    *config.ServerConfig
	srv    *http.Server
	auth   *auth.Service
	answer *answer.Service
	qa     core.QARepository
	replies core.ReplyRepository
	users   core.UserRepository
	sessions core.SessionRepository
}

func NewServer(
	ctx context.Context,
	cfg *config.ServerConfig,
	authSvc *auth.Service,
	answerSvc *answer.Service,
	qa core.QARepository,
	replies core.ReplyRepository,
	users core.UserRepository,
	sessions core.SessionRepository,
) *Server {
	s := &Server{
		cfg:      cfg,
		auth:     authSvc,
		answer:   answerSvc,
		qa:       qa,
		replies:  replies,
		users:    users,
		sessions: sessions,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(ctx))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/me", s.handleMe)

		// Everything below requires a live session.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/stats", s.handleStats)
			r.Get("/search", s.handleSearch)
			r.Get("/all", s.handleAll)
			r.Get("/categories", s.handleCategories)
			r.Post("/add", s.handleAddQA)

			r.Post("/ask-ai", s.handleAskAI)
			r.Post("/save-ai-qa", s.handleSaveAIQA)
			r.Get("/category-tools/{category}", s.handleCategoryTools)

			r.Get("/replies/{qaID}", s.handleGetReplies)
			r.Post("/replies", s.handleAddReply)
			r.Post("/replies/{replyID}/helpful", s.handleToggleHelpful)
			r.Put("/replies/{replyID}", s.handleUpdateReply)
			r.Delete("/replies/{replyID}", s.handleDeleteReply)

			r.Get("/translations/{language}", s.handleTranslations)
			r.Get("/korean-qa", s.handleKoreanQA)
			r.Get("/magic-design/{designType}", s.handleMagicDesign)
		})
	})

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func requestLogger(base context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// Requests carry the app logger so handlers can use FromCtx.
			r = r.WithContext(log.FromCtx(base).WithContext(r.Context()))
			next.ServeHTTP(ww, r)

			log.FromCtx(r.Context()).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("http request")
		})
	}
}
