package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/config"
	"github.com/jymtan/contact-manager-be/internal/http/handlers"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/middleware"
	"github.com/jymtan/contact-manager-be/internal/service"
	"github.com/jymtan/contact-manager-be/internal/storage"
	"github.com/jymtan/contact-manager-be/internal/storage/blob"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, log logging.Logger, users storage.UserStore, contacts storage.ContactStore, images *blob.Store) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	accounts := service.NewAccounts(users, tokens)
	contactSvc := service.NewContacts(contacts, users)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(accounts, log).Register(mux)
	handlers.NewUserHandler(users, images, log).Register(mux)
	handlers.NewContactHandler(contactSvc, log).Register(mux)
	handlers.NewAdminHandler(users, contactSvc, log).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Authentication runs once per request; rejection is left to the
	// per-route guards so public routes stay reachable.
	handler := middleware.Authenticate(tokens, log)(mux)
	handler = middleware.Metrics(handler)
	handler = middleware.Logging(log, handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
