package guard

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/pkg/session"
)

// IdentityResolver resolves the caller of a request. *session.Resolver implements it.
type IdentityResolver interface {
	Resolve(r *http.Request) session.Identity
}

// Policy declares the preconditions of one endpoint.
// An empty Methods list accepts every method.
type Policy struct {
	Methods     []string
	RequireAuth bool
}

// Methods rejects requests whose method is not listed with 405 and an Allow
// header. The wrapped handler is not invoked for rejected requests.
func Methods[R any](methods ...string) handler.Decorator[handler.Context, R] {
	allowed := make([]string, 0, len(methods))
	for _, m := range methods {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" && !slices.Contains(allowed, m) {
			allowed = append(allowed, m)
		}
	}
	allow := strings.Join(allowed, ", ")

	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		if len(allowed) == 0 {
			return next
		}
		return func(ctx handler.Context, req R) handler.Response {
			if !slices.Contains(allowed, ctx.Request().Method) {
				return handler.JSONError(handler.ErrMethodNotAllowed, handler.WithJSONHeader("Allow", allow))
			}
			return next(ctx, req)
		}
	}
}

// Authenticated rejects requests without a verified identity with 401.
// It reuses the identity stored by session middleware and resolves it
// itself when the middleware did not run.
func Authenticated[R any](res IdentityResolver) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			id, ok := session.FromContext(ctx)
			if !ok {
				if res != nil {
					id = res.Resolve(ctx.Request())
				}
				r := ctx.Request()
				ctx = handler.WithRequest(ctx, r.WithContext(session.WithIdentity(r.Context(), id)))
			}
			if !id.Authenticated() {
				return handler.JSONError(handler.ErrUnauthorized)
			}
			return next(ctx, req)
		}
	}
}

// Protect applies the method check and then, if required, the identity check.
func Protect[R any](res IdentityResolver, p Policy) handler.Decorator[handler.Context, R] {
	methods := Methods[R](p.Methods...)
	if !p.RequireAuth {
		return methods
	}
	auth := Authenticated[R](res)
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return methods(auth(next))
	}
}

// IdentityFrom returns the identity resolved for the request. It is the zero
// Identity when none was resolved.
func IdentityFrom(ctx context.Context) session.Identity {
	id, _ := session.FromContext(ctx)
	return id
}
