// Package requestctx carries the identity of the inbound caller through
// context. The bearer token is forwarded to both backends, so every goroutine
// calling a backend must receive a context holding the caller.
package requestctx

import "context"

// Caller is the identity of the inbound request.
type Caller struct {
	// Token is the raw bearer token, without the "Bearer " prefix.
	Token string
	// ID identifies the requester in logs. It is empty for anonymous calls.
	ID string
}

type callerContextKey struct{}

// WithCaller stores the caller in context.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// CallerFromContext returns the caller stored in context, or the zero Caller.
func CallerFromContext(ctx context.Context) Caller {
	if ctx == nil {
		return Caller{}
	}
	caller, _ := ctx.Value(callerContextKey{}).(Caller)
	return caller
}

// RequesterID returns the requester id for logging, "anonymous" when unknown.
func RequesterID(ctx context.Context) string {
	if id := CallerFromContext(ctx).ID; id != "" {
		return id
	}
	return "anonymous"
}
