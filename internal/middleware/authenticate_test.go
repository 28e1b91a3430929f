package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/logging"
)

func newAuthChain(t *testing.T) (*auth.TokenManager, func(http.Handler) http.Handler) {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)
	return tm, Authenticate(tm, logging.Nop())
}

// capture records the principal (or its absence) seen by the next handler.
type capture struct {
	called    bool
	principal *auth.Principal
	ok        bool
}

func (c *capture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.principal, c.ok = auth.PrincipalFrom(r.Context())
	})
}

func TestAuthenticateNoHeaderPassesWithoutPrincipal(t *testing.T) {
	t.Parallel()

	_, chain := newAuthChain(t)
	c := &capture{}

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.called)
	assert.False(t, c.ok)
}

func TestAuthenticateMalformedPrefixPassesWithoutPrincipal(t *testing.T) {
	t.Parallel()

	_, chain := newAuthChain(t)
	c := &capture{}

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Token abcdef")
	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.called)
	assert.False(t, c.ok)
}

func TestAuthenticateInvalidTokenPassesWithoutPrincipal(t *testing.T) {
	t.Parallel()

	_, chain := newAuthChain(t)
	c := &capture{}

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	chain(c.handler()).ServeHTTP(rec, req)

	require.True(t, c.called, "the filter must never terminate the request")
	assert.False(t, c.ok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateValidTokenAttachesPrincipal(t *testing.T) {
	t.Parallel()

	tm, chain := newAuthChain(t)
	c := &capture{}

	token, err := tm.Issue("a@x.com", "ADMIN", 9)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.ok)
	assert.Equal(t, "a@x.com", c.principal.Email)
	assert.Equal(t, auth.RoleAdmin, c.principal.Role, "role is normalized on attach")
	assert.Equal(t, int64(9), c.principal.UserID)
}

func TestAuthenticateEmptyRoleDefaultsToUser(t *testing.T) {
	t.Parallel()

	tm, chain := newAuthChain(t)
	c := &capture{}

	token, err := tm.Issue("a@x.com", "", 3)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.ok)
	assert.Equal(t, auth.RoleUser, c.principal.Role)
}

func TestAuthenticateOptionsSkipsInspection(t *testing.T) {
	t.Parallel()

	_, chain := newAuthChain(t)
	c := &capture{}

	req := httptest.NewRequest(http.MethodOptions, "/anything", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.called)
	assert.False(t, c.ok)
}

func TestAuthenticateKeepsExistingPrincipal(t *testing.T) {
	t.Parallel()

	tm, chain := newAuthChain(t)
	c := &capture{}

	token, err := tm.Issue("second@x.com", "USER", 2)
	require.NoError(t, err)

	existing := &auth.Principal{Email: "first@x.com", Role: auth.RoleAdmin, UserID: 1}
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), existing))
	req.Header.Set("Authorization", "Bearer "+token)

	chain(c.handler()).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.ok)
	assert.Equal(t, existing, c.principal, "duplicate invocation must not replace the principal")
}
