package identity

import "context"

// Principal is the authenticated caller, resolved from the bearer token by the
// middleware and passed to handlers through the request context.
type Principal struct {
	UserID   string
	Username string
}

type contextKey string

const principalKey contextKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
