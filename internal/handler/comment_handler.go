package handlers

import (
	"encoding/json"
	"net/http"

	"socialconnect/internal/middleware"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), postID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.GetComment(r.Context(), commentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	commentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), commentID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	commentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.GetPostComments(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, comments, http.StatusOK)
}
