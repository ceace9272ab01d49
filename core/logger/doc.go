// Package logger builds the zap loggers used by the CLI and the HTTP server.
//
// Entries go to stderr so that stdout stays reserved for command output such
// as manifest reports and JSON results. The console format colors levels for
// terminals; the json format suits log collectors. Debug level adds callers.
//
// WithRayID tags a request-scoped logger with the ray_id set by the rayid
// middleware.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Downloading frames", zap.Int("count", n))
package logger
