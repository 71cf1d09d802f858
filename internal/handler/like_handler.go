package handlers

import (
	"net/http"

	"socialconnect/internal/middleware"
)

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
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

	if err := h.LikeService.Like(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusCreated)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
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

	if err := h.LikeService.Unlike(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) GetLikeCount(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	count, err := h.LikeService.Count(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]int64{"count": count}, http.StatusOK)
}

func (h *Handlers) IsLiked(w http.ResponseWriter, r *http.Request) {
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

	liked, err := h.LikeService.IsLikedBy(r.Context(), postID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"isLiked": liked}, http.StatusOK)
}
