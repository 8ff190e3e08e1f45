// Package logger builds log/slog loggers for the dashboard.
//
// New returns a JSON logger by default, and WithEnvironment switches to text
// output at debug level in development. Context extractors attach
// request-scoped values to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(env, "dashboard"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			session.LoggerExtractor(),
//		),
//	)
//
// Attribute helpers such as Error and Address keep key names consistent
// across packages.
package logger
