package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id". An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Address records a wallet address under "address".
func Address(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("address", addr)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Store(name string) slog.Attr {
	return slog.String("store", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
