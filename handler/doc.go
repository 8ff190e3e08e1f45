// Package handler provides type-safe HTTP request handling for the dashboard API.
//
// Handlers are generic functions that receive a bound request value and return
// a Response. Wrap turns them into http.HandlerFunc values:
//
//	type ContentRequest struct {
//		ID string `path:"id"`
//	}
//
//	func content(ctx handler.Context, req ContentRequest) handler.Response {
//		body, err := store.Read(ctx, req.ID)
//		if err != nil {
//			return handler.JSONError(ErrContentNotFound)
//		}
//		return handler.JSON(body)
//	}
//
//	r.HandleFunc("/{id}/content", handler.Wrap(content,
//		handler.WithBinder[handler.Context, ContentRequest](binder.Path(chi.URLParam)),
//		handler.WithDecorators(guard.Methods[ContentRequest](http.MethodGet)),
//		handler.WithErrorHandler[handler.Context, ContentRequest](errorHandler),
//	))
//
// # Execution order
//
// Decorators run first, outermost first. Binders run after every decorator
// has passed the request on, immediately before the handler. A decorator that
// returns its own Response therefore short-circuits both binding and the
// handler, and exactly one Response is rendered per request.
//
// # Responses
//
//	handler.JSON(v)                                      // 200 with v as body
//	handler.JSON(v, handler.WithJSONStatus(201))         // custom status
//	handler.JSON(v, handler.WithJSONHeader("Allow", "GET"))
//	handler.JSONError(err)                               // {"error": "..."}
//
// # Error Handling
//
// HTTPError carries a status code and a client-safe message. ValidationError
// carries per-field messages and renders as 422. Any other error renders as
// 500 {"error":"Internal server error"}; the original error is only logged by
// the handler returned from NewErrorHandler.
package handler
