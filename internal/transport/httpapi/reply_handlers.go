package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sandevgo/studykb/internal/core"
	"github.com/sandevgo/studykb/pkg/log"
)

func (s *Server) handleGetReplies(w http.ResponseWriter, r *http.Request) {
	qaID := chi.URLParam(r, "qaID")

	replies, err := s.replies.ForQA(r.Context(), qaID)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to load replies")
		writeError(w, r, http.StatusInternalServerError, "Failed to load replies")
		return
	}
	if replies == nil {
		replies = []core.Reply{}
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"qa_id":   qaID,
		"replies": replies,
		"count":   len(replies),
	})
}

type addReplyRequest struct {
	QAID          string `json:"qa_id"`
	Content       string `json:"content"`
	ParentReplyID string `json:"parent_reply_id"`
}

func (s *Server) handleAddReply(w http.ResponseWriter, r *http.Request) {
	var req addReplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	content := strings.TrimSpace(req.Content)
	if req.QAID == "" || content == "" {
		writeError(w, r, http.StatusBadRequest, "QA ID and content are required")
		return
	}

	entry, err := s.qa.GetByID(r.Context(), req.QAID)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to load qa entry")
		writeError(w, r, http.StatusInternalServerError, "Failed to add reply")
		return
	}
	if entry == nil {
		writeError(w, r, http.StatusNotFound, "Q&A pair not found")
		return
	}

	user := currentUser(r)
	now := time.Now().UTC()
	reply := core.Reply{
		ID:            uuid.NewString(),
		QAID:          req.QAID,
		UserID:        user.ID,
		Username:      user.Username,
		Content:       content,
		ParentReplyID: req.ParentReplyID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.replies.Add(r.Context(), reply); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to add reply")
		writeError(w, r, http.StatusInternalServerError, "Failed to add reply")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"reply":   reply,
		"message": "Reply added successfully",
	})
}

func (s *Server) handleToggleHelpful(w http.ResponseWriter, r *http.Request) {
	replyID := chi.URLParam(r, "replyID")

	helpful, err := s.replies.ToggleHelpful(r.Context(), replyID)
	if errors.Is(err, core.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "Reply not found")
		return
	}
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to toggle helpful")
		writeError(w, r, http.StatusInternalServerError, "Failed to update reply")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":    true,
		"reply_id":   replyID,
		"is_helpful": helpful,
		"message":    "Helpful status updated",
	})
}

type updateReplyRequest struct {
	Content string `json:"content"`
}

// loadOwnReply fetches a reply and enforces that the requester wrote
// it. Responds and returns nil when it cannot.
func (s *Server) loadOwnReply(w http.ResponseWriter, r *http.Request, replyID string) *core.Reply {
	reply, err := s.replies.GetByID(r.Context(), replyID)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to load reply")
		writeError(w, r, http.StatusInternalServerError, "Failed to load reply")
		return nil
	}
	if reply == nil || reply.IsDeleted {
		writeError(w, r, http.StatusNotFound, "Reply not found")
		return nil
	}
	if reply.UserID != currentUser(r).ID {
		writeError(w, r, http.StatusForbidden, "You can only edit your own replies")
		return nil
	}
	return reply
}

func (s *Server) handleUpdateReply(w http.ResponseWriter, r *http.Request) {
	replyID := chi.URLParam(r, "replyID")

	var req updateReplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeError(w, r, http.StatusBadRequest, "Content is required")
		return
	}

	if s.loadOwnReply(w, r, replyID) == nil {
		return
	}

	if err := s.replies.UpdateContent(r.Context(), replyID, content); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to update reply")
		writeError(w, r, http.StatusInternalServerError, "Failed to update reply")
		return
	}

	updated, err := s.replies.GetByID(r.Context(), replyID)
	if err != nil || updated == nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to update reply")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"reply":   updated,
		"message": "Reply updated successfully",
	})
}

func (s *Server) handleDeleteReply(w http.ResponseWriter, r *http.Request) {
	replyID := chi.URLParam(r, "replyID")

	if s.loadOwnReply(w, r, replyID) == nil {
		return
	}

	if err := s.replies.SoftDelete(r.Context(), replyID); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to delete reply")
		writeError(w, r, http.StatusInternalServerError, "Failed to delete reply")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reply deleted successfully",
	})
}
