package session

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor adding the caller address to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if addr, ok := AddressFromContext(ctx); ok {
			return slog.String("address", addr), true
		}
		return slog.Attr{}, false
	}
}
