// Package logger provides structured logging based on Zap.
//
// It produces a configured logger for either development (console encoding,
// colored levels) or production (JSON encoding).
//
// # Request correlation
//
// The WithRayID helper extracts the ray_id from a Fiber context and attaches
// it to the log entry, so all logs belonging to one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
