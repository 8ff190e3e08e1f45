// Package file provides read access to stored content through a common
// Storage interface with local filesystem and S3 backends.
//
// # Backends
//
// LocalStorage confines every path to its base directory; anything that
// resolves outside it fails with ErrInvalidPath. S3Storage reads objects from
// a bucket, optionally below a key prefix, and works with S3-compatible
// services via a custom endpoint and path-style addressing.
//
// New picks the backend from Config, which is populated from the environment:
//
//	CONTENT_BACKEND=local|s3
//	CONTENT_DIR=./content
//	S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_PREFIX,
//	S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_FORCE_PATH_STYLE
//
// # Usage
//
//	store, err := file.New(ctx, cfg.Content)
//	if err != nil {
//	    return err
//	}
//	data, err := store.Read(ctx, "proposals/42.md")
//	if errors.Is(err, file.ErrFileNotFound) {
//	    // 404
//	}
//
// # Error Handling
//
// Backend failures are mapped to package sentinels (ErrFileNotFound,
// ErrAccessDenied, ErrOperationTimeout, ...) and wrapped with context.
// Reads larger than MaxReadSize fail with ErrFileTooLarge.
package file
