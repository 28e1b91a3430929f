package handlers

import (
	"errors"
	"net/http"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/middleware"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/service"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// AdminHandler exposes the administrator view over all users and contacts.
type AdminHandler struct {
	users    storage.UserStore
	contacts *service.Contacts
	log      logging.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(users storage.UserStore, contacts *service.Contacts, log logging.Logger) *AdminHandler {
	return &AdminHandler{users: users, contacts: contacts, log: log}
}

// Register attaches admin routes behind the administrator role gate.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	admin := middleware.RequireRole(auth.RoleAdmin)
	mux.Handle("GET /api/admin/users", admin(http.HandlerFunc(h.handleListUsers)))
	mux.Handle("DELETE /api/admin/users/{id}", admin(http.HandlerFunc(h.handleDeleteUser)))
	mux.Handle("GET /api/admin/users/{id}/contacts", admin(http.HandlerFunc(h.handleUserContacts)))
}

func (h *AdminHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "list users failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to list users")
		return
	}

	out := make([]dto.UserWithContacts, 0, len(users))
	for _, user := range users {
		contacts, err := h.contacts.List(r.Context(), user.ID)
		if err != nil {
			h.log.Error(r.Context(), "list user contacts failed", "user_id", user.ID, "error", err)
			respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to list users")
			return
		}
		out = append(out, dto.UserWithContacts{User: user, Contacts: contacts})
	}

	respond.JSON(w, http.StatusOK, "users", out)
}

func (h *AdminHandler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "user not found")
			return
		}
		h.log.Error(r.Context(), "delete user failed", "user_id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to delete user")
		return
	}

	respond.JSON(w, http.StatusOK, "user deleted successfully", nil)
}

func (h *AdminHandler) handleUserContacts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	contacts, err := h.contacts.List(r.Context(), id)
	if err != nil {
		h.log.Error(r.Context(), "list user contacts failed", "user_id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to list contacts")
		return
	}

	respond.JSON(w, http.StatusOK, "contacts", contacts)
}
