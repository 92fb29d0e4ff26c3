// Package kit provides transport-agnostic endpoint plumbing shared by
// the HTTP and MCP surfaces: a common Endpoint signature, middleware
// composition, and context accessors for request-scoped values.
package kit

import "context"

// Endpoint is a transport-agnostic request handler. HTTP handlers and
// MCP tools both decode into a typed request and delegate here.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behavior.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares. The first middleware runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
