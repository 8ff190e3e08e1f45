package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/meshjs/dashboard/pkg/binder"
	"github.com/meshjs/dashboard/pkg/clientip"
	"github.com/meshjs/dashboard/pkg/logger"
	"github.com/meshjs/dashboard/pkg/requestid"
)

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps binder failures to a client error and leaves every
// other error as is for JSONError to translate.
func classifyError(err error) error {
	switch {
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrFailedToParsePath):
		return ErrBadRequest
	}
	return err
}

// NewErrorHandler creates the JSON error handler shared by all modules.
// The raw error is logged with the request id; the client only sees the
// classified message.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, body := errorToBody(classifyError(err))

		log.LogAttrs(r.Context(), determineLogLevel(status), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientip.FromRequest(r)),
			logger.Component("error_handler"),
		)

		resp := JSON(body, WithJSONStatus(status))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
