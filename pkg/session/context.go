package session

import "context"

type identityContextKey struct{}

// WithIdentity stores id in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// FromContext returns the identity stored by Middleware. The boolean is false
// when nothing was resolved for this context, which differs from an
// unauthenticated identity.
func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// AddressFromContext returns the authenticated address, if any.
func AddressFromContext(ctx context.Context) (string, bool) {
	id, ok := FromContext(ctx)
	if !ok || !id.Authenticated() {
		return "", false
	}
	return id.Address, true
}
