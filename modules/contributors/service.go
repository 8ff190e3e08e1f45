package contributors

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/pkg/guard"
)

// Service serves the contributors leaderboard.
type Service struct {
	store        Store
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService requires a store. A nil errorHandler renders errors without logging.
func NewService(store Store, errorHandler handler.ErrorHandler[handler.Context]) (*Service, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}
	return &Service{store: store, errorHandler: errorHandler}, nil
}

// Handle serves GET / with the leaderboard.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.HandleFunc("/", handler.Wrap(s.list,
		handler.WithDecorators(guard.Methods[struct{}](http.MethodGet)),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	list, err := s.store.List(ctx)
	if err != nil {
		return handler.Error(err)
	}
	if list == nil {
		list = []Contributor{}
	}
	return handler.JSON(list)
}
