package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meshjs/dashboard/handler"
)

// Mountable is implemented by every module service.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions lists the modules to mount. Nil modules are skipped.
type RouterOptions struct {
	Auth         Mountable
	Contributors Mountable
	Proposals    Mountable
	Preferences  Mountable
}

// Router builds the /api subtree.
//
//	r.Mount("/api", api.Router(api.RouterOptions{
//		Auth:         authSvc,
//		Contributors: contributorsSvc,
//	}))
//
// Unknown paths answer 404 {"error":"Not Found"}.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.NotFound(notFound)

	if opts.Auth != nil {
		r.Mount("/auth", opts.Auth.Handle())
	}
	if opts.Contributors != nil {
		r.Mount("/contributors", opts.Contributors.Handle())
	}
	if opts.Proposals != nil {
		r.Mount("/proposals", opts.Proposals.Handle())
	}
	if opts.Preferences != nil {
		r.Mount("/preferences", opts.Preferences.Handle())
	}

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
}
