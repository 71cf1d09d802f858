package handlers

import (
	"encoding/json"
	"net/http"

	"socialconnect/internal/middleware"
)

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var viewerID *int64
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	post, err := h.PostService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.GetUserPosts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	feed, err := h.FeedService.BuildFeed(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, feed, http.StatusOK)
}

func (h *Handlers) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	var viewerID *int64
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	posts, err := h.FeedService.GetAllPosts(r.Context(), viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}
