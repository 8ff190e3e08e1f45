package file

import (
	"context"
	"fmt"
)

// MaxReadSize bounds the bytes Read returns for a single object (5MB).
const MaxReadSize = 5 << 20

// Entry represents a file or directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage is a read-only view over a content backend.
type Storage interface {
	// Read returns the full content of a file.
	Read(ctx context.Context, path string) ([]byte, error)
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Config selects and configures the content backend.
type Config struct {
	Backend string   `env:"CONTENT_BACKEND" envDefault:"local" validate:"oneof=local s3"`
	Dir     string   `env:"CONTENT_DIR" envDefault:"./content"`
	S3      S3Config `envPrefix:"S3_"`
}

// New builds the Storage named by cfg.Backend.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		return NewLocalStorage(cfg.Dir)
	case BackendS3:
		return NewS3Storage(ctx, cfg.S3, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
}
