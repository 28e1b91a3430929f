package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/logging"
	"github.com/jymtan/contact-manager-be/internal/middleware"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/service"
	"github.com/jymtan/contact-manager-be/internal/storage/blob"
	"github.com/jymtan/contact-manager-be/internal/storage/memory"
)

// envelope mirrors respond.Envelope with raw data for per-test decoding.
type envelope struct {
	Code     int             `json:"code"`
	Category string          `json:"category"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
}

type testAPI struct {
	t      *testing.T
	server *httptest.Server
	store  *memory.Store
	tokens *auth.TokenManager
}

// newTestAPI wires every handler behind the authentication filter, the
// same shape the real server uses, backed by in-memory stores and a
// temp-dir image store.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)
	accounts := service.NewAccounts(store, tokens)
	contacts := service.NewContacts(store, store)
	images, err := blob.New(t.TempDir(), logging.Nop())
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewHealthHandler(time.Now()).Register(mux)
	NewAuthHandler(accounts, logging.Nop()).Register(mux)
	NewUserHandler(store, images, logging.Nop()).Register(mux)
	NewContactHandler(contacts, logging.Nop()).Register(mux)
	NewAdminHandler(store, contacts, logging.Nop()).Register(mux)

	server := httptest.NewServer(middleware.Authenticate(tokens, logging.Nop())(mux))
	t.Cleanup(server.Close)

	return &testAPI{t: t, server: server, store: store, tokens: tokens}
}

// do sends one JSON request and decodes the envelope.
func (a *testAPI) do(method, path, token string, body any) (int, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (a *testAPI) decodeData(env envelope, dst any) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(env.Data, dst))
}

// registerUser registers a standard user and returns the auth response.
func (a *testAPI) registerUser(name, email string) dto.AuthResponse {
	a.t.Helper()
	status, env := a.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: name, Email: email, Password: "pw123456",
	})
	require.Equal(a.t, http.StatusCreated, status)
	var out dto.AuthResponse
	a.decodeData(env, &out)
	return out
}

// registerAdmin registers an administrator and returns the auth response.
func (a *testAPI) registerAdmin(name, email string) dto.AuthResponse {
	a.t.Helper()
	status, env := a.do(http.MethodPost, "/api/auth/admin/register", "", dto.RegisterRequest{
		Name: name, Email: email, Password: "pw123456",
	})
	require.Equal(a.t, http.StatusCreated, status)
	var out dto.AuthResponse
	a.decodeData(env, &out)
	return out
}

func (a *testAPI) createContact(token string, req dto.ContactRequest) int64 {
	a.t.Helper()
	status, env := a.do(http.MethodPost, "/api/contacts", token, req)
	require.Equal(a.t, http.StatusCreated, status)
	var created struct {
		ID int64 `json:"id"`
	}
	a.decodeData(env, &created)
	return created.ID
}

func contactPath(id int64) string {
	return fmt.Sprintf("/api/contacts/%d", id)
}
