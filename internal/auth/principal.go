package auth

import "context"

// Principal is the authenticated identity attached to one request.
// It is rebuilt from the token on every request and never persisted.
type Principal struct {
	Email  string
	Role   string
	UserID int64
}

type contextKey struct{ name string }

var principalCtxKey = &contextKey{"principal"}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFrom extracts the principal, if one was attached.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(*Principal)
	return p, ok
}
