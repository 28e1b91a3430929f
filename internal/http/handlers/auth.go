package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/service"
)

// AuthHandler owns the public registration and login endpoints.
type AuthHandler struct {
	accounts *service.Accounts
	log      logging.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(accounts *service.Accounts, log logging.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log}
}

// Register attaches auth routes to the mux. All four are public.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/admin/register", h.handleAdminRegister)
	mux.HandleFunc("POST /api/auth/admin/login", h.handleAdminLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.accounts.Register)
}

func (h *AuthHandler) handleAdminRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.accounts.RegisterAdmin)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, create func(ctx context.Context, name, email, password string) (string, models.User, error)) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}
	if err := validateRegistration(req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	token, user, err := create(r.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respond.Error(w, http.StatusConflict, respond.CategoryConflict, "email already registered")
			return
		}
		h.log.Error(r.Context(), "registration failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to register user")
		return
	}

	respond.JSON(w, http.StatusCreated, "registration successful", authResponse(token, user))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok {
		return
	}

	token, user, err := h.accounts.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "login successful", authResponse(token, user))
}

func (h *AuthHandler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok {
		return
	}

	token, user, err := h.accounts.AdminLogin(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminRequired) {
			respond.Error(w, http.StatusForbidden, respond.CategoryForbidden, "admin role required")
			return
		}
		h.writeLoginError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, "login successful", authResponse(token, user))
}

func (h *AuthHandler) decodeLogin(w http.ResponseWriter, r *http.Request) (dto.LoginRequest, bool) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return req, false
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "email and password are required")
		return req, false
	}
	return req, true
}

func (h *AuthHandler) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "invalid email or password")
		return
	}
	h.log.Error(r.Context(), "login failed", "error", err)
	respond.Error(w, http.StatusInternalServerError, respond.CategoryInternal, "failed to log in")
}

func validateRegistration(req dto.RegisterRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if !strings.Contains(req.Email, "@") {
		return errors.New("a valid email is required")
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func authResponse(token string, user models.User) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     token,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		UserID:    user.ID,
		ImagePath: user.ImagePath,
	}
}
