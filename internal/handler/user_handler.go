package handlers

import (
	"encoding/json"
	"net/http"

	"socialconnect/internal/middleware"
	"socialconnect/internal/service"
)

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), userID, service.UpdateProfileRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	user, err := h.UserService.UploadProfilePicture(r.Context(), userID, header.Filename, contentType, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetProfilePictureURL(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	url, err := h.UserService.ProfilePictureURL(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"url": url}, http.StatusOK)
}
