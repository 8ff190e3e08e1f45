package handler

import (
	"errors"
	"net/http"

	"github.com/meshjs/dashboard/pkg/binder"
)

// HandlerFunc provides type-safe HTTP request handling.
// C is the handler Context, R can be any request type.
//
//	h := handler.HandlerFunc[handler.Context, ContentRequest](
//		func(ctx handler.Context, req ContentRequest) handler.Response {
//			return handler.JSON(content)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in the list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders      []Bind
	errorHandler ErrorHandler[C]
	decorators   []Decorator[C, R]
}

// WithBinder sets a single request binder.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
//
//	r.HandleFunc("/logout", handler.Wrap(logout,
//		handler.WithDecorators(guard.Methods[struct{}](http.MethodPost)),
//	))
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler renders errors as JSON without logging.
func defaultErrorHandler[C Context](ctx C, err error) {
	_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// errorResponse defers to the configured ErrorHandler when rendered.
type errorResponse[C Context] struct {
	ctx    C
	err    error
	handle ErrorHandler[C]
}

func (e errorResponse[C]) Render(http.ResponseWriter, *http.Request) error {
	e.handle(e.ctx, e.err)
	return nil
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Decorators run before binding, so a decorator that rejects the request
// (wrong method, no session) returns before the body is read and before the
// handler runs. Exactly one Response is rendered per request.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{errorHandler: defaultErrorHandler[C]}

	for _, opt := range opts {
		opt(cfg)
	}

	bound := HandlerFunc[C, R](func(ctx C, _ R) Response {
		var req R
		for _, bind := range cfg.binders {
			if err := bind(ctx.Request(), &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				return errorResponse[C]{ctx: ctx, err: err, handle: cfg.errorHandler}
			}
		}
		return h(ctx, req)
	})

	final := bound
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := any(NewContext(w, r)).(C)
		if !ok {
			panic("handler: Wrap supports handler.Context only")
		}

		var zero R
		response := final(ctx, zero)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
