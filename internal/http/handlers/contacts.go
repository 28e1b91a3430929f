package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/middleware"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/service"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// ContactHandler owns the per-user contact CRUD and search endpoints.
type ContactHandler struct {
	contacts *service.Contacts
	log      logging.Logger
}

// NewContactHandler constructs the handler.
func NewContactHandler(contacts *service.Contacts, log logging.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// Register attaches contact routes; all of them require a principal.
func (h *ContactHandler) Register(mux *http.ServeMux) {
	mux.Handle("POST /api/contacts", middleware.RequireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/contacts", middleware.RequireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/contacts/search", middleware.RequireAuth(http.HandlerFunc(h.handleSearch)))
	mux.Handle("PUT /api/contacts/{id}", middleware.RequireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/contacts/{id}", middleware.RequireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *ContactHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	req, ok := h.decodeContact(w, r)
	if !ok {
		return
	}

	created, err := h.contacts.Create(r.Context(), principal.UserID, req)
	if err != nil {
		h.writeContactError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, "contact created", created)
}

func (h *ContactHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}
	req, ok := h.decodeContact(w, r)
	if !ok {
		return
	}

	updated, err := h.contacts.Update(r.Context(), id, principal.UserID, req)
	if err != nil {
		h.writeContactError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "contact updated", updated)
}

func (h *ContactHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	if err := h.contacts.Delete(r.Context(), id, principal.UserID); err != nil {
		h.writeContactError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "contact deleted successfully", nil)
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	contacts, err := h.contacts.List(r.Context(), principal.UserID)
	if err != nil {
		h.writeContactError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "contacts", contacts)
}

func (h *ContactHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFrom(r.Context())

	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if keyword == "" {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "keyword is required")
		return
	}

	contacts, err := h.contacts.Search(r.Context(), principal.UserID, keyword)
	if err != nil {
		h.writeContactError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "contacts", contacts)
}

func (h *ContactHandler) decodeContact(w http.ResponseWriter, r *http.Request) (dto.ContactRequest, bool) {
	var req dto.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return req, false
	}
	if err := validateName(req.Name); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return req, false
	}
	return req, true
}

func (h *ContactHandler) writeContactError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		respond.Error(w, http.StatusForbidden, respond.CategoryForbidden, "contact does not belong to user")
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "not found")
	default:
		h.log.Error(r.Context(), "contact operation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "contact operation failed")
	}
}
