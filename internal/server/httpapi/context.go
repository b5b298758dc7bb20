package httpapi

import "context"

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID    int64
	Email string
}

type identityKey struct{}

// WithIdentity stores the identity in context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the identity from context (if any).
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok
}
