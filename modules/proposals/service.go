package proposals

import (
	"errors"
	"net/http"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/pkg/binder"
	"github.com/meshjs/dashboard/pkg/file"
	"github.com/meshjs/dashboard/pkg/guard"
)

const (
	contentDir = "proposals"
	contentExt = ".md"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Service proxies proposal markdown from a read-only Storage.
type Service struct {
	storage      file.Storage
	errorHandler handler.ErrorHandler[handler.Context]
}

type contentRequest struct {
	ID string `path:"id"`
}

// ContentResponse carries the raw markdown of one proposal.
type ContentResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ListResponse names the proposals that have stored content.
type ListResponse struct {
	Proposals []string `json:"proposals"`
}

// NewService requires storage. A nil errorHandler renders errors without logging.
func NewService(storage file.Storage, errorHandler handler.ErrorHandler[handler.Context]) (*Service, error) {
	if storage == nil {
		return nil, ErrNoStorage
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}
	return &Service{storage: storage, errorHandler: errorHandler}, nil
}

// Handle serves GET / (ids with content) and GET /{id}/content.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", handler.Wrap(s.list,
		handler.WithDecorators(guard.Methods[struct{}](http.MethodGet)),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.HandleFunc("/{id}/content", handler.Wrap(s.content,
		handler.WithDecorators(guard.Methods[contentRequest](http.MethodGet)),
		handler.WithBinder[handler.Context, contentRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, contentRequest](s.errorHandler),
	))

	return r
}

func (s *Service) content(ctx handler.Context, req contentRequest) handler.Response {
	if !idPattern.MatchString(req.ID) {
		return handler.Error(ErrContentNotFound)
	}

	data, err := s.storage.Read(ctx, path.Join(contentDir, req.ID+contentExt))
	if err != nil {
		return handler.Error(errors.Join(ErrContentNotFound, err))
	}

	return handler.JSON(ContentResponse{ID: req.ID, Content: string(data)})
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	entries, err := s.storage.List(ctx, contentDir)
	if err != nil && !errors.Is(err, file.ErrDirectoryNotFound) {
		return handler.Error(err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || !strings.HasSuffix(e.Name, contentExt) {
			continue
		}
		if id := strings.TrimSuffix(e.Name, contentExt); idPattern.MatchString(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return handler.JSON(ListResponse{Proposals: ids})
}
