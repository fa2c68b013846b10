package shared

import "context"

type sessionContextKey struct{}

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context, defaulting to Anonymous.
func SessionFromContext(ctx context.Context) Session {
	if sess, ok := ctx.Value(sessionContextKey{}).(Session); ok {
		return sess
	}
	return Anonymous
}
