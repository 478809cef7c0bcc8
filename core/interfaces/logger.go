package interfaces

// Logger defines the interface for logging throughout the application.
// Implementations decide on format and destination; callers only pick a
// level and attach structured fields.
//
// Example usage:
//
//	logger.Info("Fetched articles", map[string]interface{}{
//		"count":  12,
//		"source": "contentful",
//	})
//
//	logger.Error("Feed candidate failed", map[string]interface{}{
//		"candidate": "rss2json",
//		"error":     err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Services fall back to it when no logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
