package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/internal/service/answer"
	"github.com/sandevgo/studykb/pkg/log"
)

type askAIRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleAskAI(w http.ResponseWriter, r *http.Request) {
	var req askAIRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeError(w, r, http.StatusBadRequest, "Question is required")
		return
	}

	result := s.answer.Ask(r.Context(), question)

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":         true,
		"question":        result.Question,
		"answer":          result.Formatted,
		"category":        result.Category,
		"confidence":      result.Answer.Confidence,
		"sources":         result.Answer.Sources,
		"reasoning":       result.Answer.Reasoning,
		"tools":           result.Tools,
		"auto_classified": true,
	})
}

type saveAIQARequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) handleSaveAIQA(w http.ResponseWriter, r *http.Request) {
	var req saveAIQARequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		writeError(w, r, http.StatusBadRequest, "Question and answer are required")
		return
	}

	// Manual category wins; otherwise classify from the question.
	category := req.Category
	if category == "" {
		category = answer.Classify(req.Question).String()
	}
	tags := req.Tags
	if len(tags) == 0 {
		tags = []string{"AI생성"}
	}

	now := time.Now().UTC()
	entry := core.QAEntry{
		ID:        uuid.NewString(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  category,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.qa.Add(r.Context(), entry); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to save ai qa")
		writeError(w, r, http.StatusInternalServerError, "Failed to save entry")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"id":       entry.ID,
		"message":  "AI Q&A saved successfully",
		"category": category,
		"added_by": "AI + " + currentUser(r).Username,
	})
}

func (s *Server) handleCategoryTools(w http.ResponseWriter, r *http.Request) {
	category := core.Category(chi.URLParam(r, "category"))
	writeJSON(w, r, http.StatusOK, map[string]any{
		"category": category,
		"tools":    answer.CategoryTools(category),
	})
}
