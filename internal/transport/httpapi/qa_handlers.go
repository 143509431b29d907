package httpapi

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/internal/service/seed"
	"github.com/sandevgo/studykb/pkg/conv"
	"github.com/sandevgo/studykb/pkg/log"
)

const answerExcerptLen = 200

type qaView struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Excerpt    string       `json:"excerpt"`
	Category   string       `json:"category"`
	Tags       []string     `json:"tags"`
	CreatedAt  time.Time    `json:"created_at"`
	Replies    []core.Reply `json:"replies"`
	ReplyCount int          `json:"reply_count"`
}

func (s *Server) qaView(r *http.Request, entry core.QAEntry) qaView {
	replies, err := s.replies.ForQA(r.Context(), entry.ID)
	if err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Str("qa_id", entry.ID).Msg("failed to load replies")
	}
	if replies == nil {
		replies = []core.Reply{}
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	return qaView{
		ID:         entry.ID,
		Question:   entry.Question,
		Answer:     entry.Answer,
		Excerpt:    conv.MarkdownExcerpt(entry.Answer, answerExcerptLen),
		Category:   entry.Category,
		Tags:       entry.Tags,
		CreatedAt:  entry.CreatedAt,
		Replies:    replies,
		ReplyCount: len(replies),
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qaStats, err := s.qa.Stats(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load qa stats")
		writeError(w, r, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	replyStats, err := s.replies.Stats(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load reply stats")
		writeError(w, r, http.StatusInternalServerError, "Failed to load statistics")
		return
	}

	userStats, err := s.users.Stats(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load user stats")
		writeError(w, r, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	if active, err := s.sessions.CountActive(ctx, time.Now().UTC()); err == nil {
		userStats.ActiveSessions = active
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"total_qa":           qaStats.TotalQA,
		"categories":         qaStats.Categories,
		"category_counts":    qaStats.CategoryCounts,
		"top_tags":           qaStats.TopTags,
		"user_stats":         userStats,
		"reply_stats":        replyStats,
		"student_categories": seed.StudentCategories(),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	if query == "" {
		writeError(w, r, http.StatusBadRequest, "Query parameter required")
		return
	}

	entries, err := s.qa.Search(r.Context(), query, category)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("qa search failed")
		writeError(w, r, http.StatusInternalServerError, "Search failed")
		return
	}

	results := make([]qaView, 0, len(entries))
	for _, e := range entries {
		results = append(results, s.qaView(r, e))
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"query":    query,
		"category": category,
		"results":  results,
		"count":    len(results),
	})
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	entries, err := s.qa.All(r.Context())
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to list qa entries")
		writeError(w, r, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	views := make([]qaView, 0, len(entries))
	for _, e := range entries {
		views = append(views, s.qaView(r, e))
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	writeJSON(w, r, http.StatusOK, map[string]any{
		"qa_pairs": views,
		"count":    len(views),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.qa.Categories(r.Context())
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to list categories")
		writeError(w, r, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	sort.Strings(cats)
	if cats == nil {
		cats = []string{}
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"categories":         cats,
		"student_categories": seed.StudentCategories(),
	})
}

type addQARequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) handleAddQA(w http.ResponseWriter, r *http.Request) {
	var req addQARequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		writeError(w, r, http.StatusBadRequest, "Question and answer required")
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}

	now := time.Now().UTC()
	entry := core.QAEntry{
		ID:        uuid.NewString(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.qa.Add(r.Context(), entry); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to add qa entry")
		writeError(w, r, http.StatusInternalServerError, "Failed to add entry")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"id":       entry.ID,
		"message":  "Q&A pair added successfully",
		"added_by": currentUser(r).Username,
	})
}
