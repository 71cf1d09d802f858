package handlers

import (
	"net/http"

	"socialconnect/internal/middleware"
)

type UserListResponse struct {
	Users      interface{} `json:"users"`
	TotalCount int         `json:"totalCount"`
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.FollowService.Follow(r.Context(), userID, targetID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusCreated)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), userID, targetID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, nil, http.StatusNoContent)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	users, err := h.FollowService.GetFollowers(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, UserListResponse{Users: users, TotalCount: len(users)}, http.StatusOK)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	users, err := h.FollowService.GetFollowing(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, UserListResponse{Users: users, TotalCount: len(users)}, http.StatusOK)
}

func (h *Handlers) GetFollowerCount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	count, err := h.FollowService.FollowerCount(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]int64{"count": count}, http.StatusOK)
}

func (h *Handlers) GetFollowingCount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	count, err := h.FollowService.FollowingCount(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]int64{"count": count}, http.StatusOK)
}

func (h *Handlers) IsFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	following, err := h.FollowService.IsFollowing(r.Context(), userID, targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"isFollowing": following}, http.StatusOK)
}
