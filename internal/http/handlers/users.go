package handlers

import (
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/middleware"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/storage"
	"github.com/jymtan/contact-manager-be/internal/storage/blob"
)

const maxUploadMemory = 8 << 20

// UserHandler serves the authenticated user's profile and image endpoints.
type UserHandler struct {
	users  storage.UserStore
	images *blob.Store
	log    logging.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(users storage.UserStore, images *blob.Store, log logging.Logger) *UserHandler {
	return &UserHandler{users: users, images: images, log: log}
}

// Register attaches user routes. Image serving is public; the original
// frontend loads images with a bare <img> tag.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /api/user/profile", middleware.RequireAuth(http.HandlerFunc(h.handleProfile)))
	mux.Handle("POST /api/user/profile/image", middleware.RequireAuth(http.HandlerFunc(h.handleUploadImage)))
	mux.HandleFunc("GET /api/user/images/{filename}", h.handleServeImage)
}

func (h *UserHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	user, err := h.users.FindByID(r.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "user not found")
			return
		}
		h.log.Error(r.Context(), "fetch profile failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to fetch profile")
		return
	}

	respond.JSON(w, http.StatusOK, "profile", user)
}

func (h *UserHandler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "multipart form with a file field is required")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "file is required")
		return
	}
	defer file.Close()

	user, err := h.users.FindByID(r.Context(), principal.UserID)
	if err != nil {
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "user not found")
		return
	}

	ref, err := h.images.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, blob.ErrEmptyFile), errors.Is(err, blob.ErrNotImage), errors.Is(err, blob.ErrTooLarge):
			respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		default:
			h.log.Error(r.Context(), "store image failed", "error", err)
			respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to upload image")
		}
		return
	}

	updated, err := h.users.UpdateImagePath(r.Context(), principal.UserID, ref)
	if err != nil {
		h.images.Delete(ref)
		h.log.Error(r.Context(), "update image path failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to upload image")
		return
	}

	// The replaced image is removed only once the new one is in place.
	if user.ImagePath != "" && user.ImagePath != ref {
		h.images.Delete(user.ImagePath)
	}

	respond.JSON(w, http.StatusOK, "image uploaded successfully", dto.ImageUploadResponse{
		ImagePath: updated.ImagePath,
		ImageURL:  "/api/user/images/" + path.Base(updated.ImagePath),
	})
}

func (h *UserHandler) handleServeImage(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	f, err := h.images.Open(filename)
	if err != nil {
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "image not found")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", blob.ContentTypeFor(filename))
	if _, err := io.Copy(w, f); err != nil {
		h.log.Warn(r.Context(), "serving image interrupted", "filename", filename, "error", err)
	}
}
