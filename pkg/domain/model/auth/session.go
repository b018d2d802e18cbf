package auth

import (
	"context"
)

// Session is the authenticated principal attached to a request after the
// session cookie has been verified.
type Session struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewSession creates a session for the given principal
func NewSession(sub, email, name string) *Session {
	return &Session{
		Sub:   sub,
		Email: email,
		Name:  name,
	}
}

type ctxSessionKey struct{}

// ContextWithSession returns a context carrying the session
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey{}, s)
}

// SessionFromContext extracts the session from the context, or nil when the
// request is unauthenticated.
func SessionFromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxSessionKey{}).(*Session)
	if !ok {
		return nil
	}
	return s
}
