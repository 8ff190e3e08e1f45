// Package httpserver runs the dashboard HTTP server with graceful shutdown
// and exposes liveness and readiness handlers.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns once ctx is cancelled and in-flight requests have drained.
package httpserver
