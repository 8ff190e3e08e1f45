// Package guard provides handler decorators that enforce endpoint
// preconditions before any business logic runs.
//
// Methods answers disallowed methods with 405, an Allow header and
// {"error":"Method Not Allowed"}. Authenticated answers requests without a
// verified session with 401 {"error":"Unauthorized"}. Protect combines both
// from a Policy, checking the method first.
//
//	r.HandleFunc("/preferences", handler.Wrap(h,
//		handler.WithDecorators(guard.Protect[Request](resolver, guard.Policy{
//			Methods:     []string{http.MethodGet, http.MethodPut},
//			RequireAuth: true,
//		})),
//	))
//
// Inside the handler IdentityFrom(ctx) returns the caller.
package guard
