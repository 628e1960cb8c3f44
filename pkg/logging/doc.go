// Package logging provides structured logging configuration for magemock.
//
// This package wraps log/slog so that the store, the fulfillment engine and
// the HTTP transport all log the same way.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "port", 8080)
//	logger.Error("failed to load fixtures", "error", err)
//
// # Integration
//
// Components accept a *slog.Logger through a functional option. If no logger
// is provided they use logging.Nop(). Use Component to tag a logger with the
// name of the subsystem that owns it.
package logging
