package preferences

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/pkg/binder"
	"github.com/meshjs/dashboard/pkg/guard"
)

// Service serves the authenticated preferences routes.
type Service struct {
	store        Store
	resolver     guard.IdentityResolver
	validate     *validator.Validate
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService requires a store and the resolver used to authenticate callers.
func NewService(store Store, resolver guard.IdentityResolver, errorHandler handler.ErrorHandler[handler.Context]) (*Service, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if resolver == nil {
		return nil, ErrNoResolver
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}
	return &Service{
		store:        store,
		resolver:     resolver,
		validate:     newValidator(),
		errorHandler: errorHandler,
	}, nil
}

// Handle serves GET and PUT on / for the authenticated wallet.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.HandleFunc("/", handler.Wrap(s.serve,
		handler.WithDecorators(guard.Protect[UpdateRequest](s.resolver, guard.Policy{
			Methods:     []string{http.MethodGet, http.MethodPut},
			RequireAuth: true,
		})),
		handler.WithBinder[handler.Context, UpdateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, UpdateRequest](s.errorHandler),
	))
	return r
}

func (s *Service) serve(ctx handler.Context, req UpdateRequest) handler.Response {
	address := guard.IdentityFrom(ctx).Address

	if ctx.Request().Method == http.MethodGet {
		p, err := s.store.Get(ctx, address)
		if errors.Is(err, ErrNotFound) {
			return handler.JSON(Defaults(address))
		}
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(p)
	}

	if err := s.validate.Struct(req); err != nil {
		return handler.Error(toValidationError(err))
	}

	p, err := s.store.Upsert(ctx, Preferences{
		Address:   address,
		Theme:     req.Theme,
		Watchlist: req.Watchlist,
	})
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(p)
}
