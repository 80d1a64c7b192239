package log

import (
	"strings"
	"time"
)

// Logger provides structured logging capabilities.
// Implementations can wrap zerolog, zap, logrus, or any other logging library.
type Logger interface {
	// Debug logs a debug-level message with fields.
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with fields.
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with fields.
	Error(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// redactedPrefix is how much of a secret survives redaction.
const redactedPrefix = 5

// Redact creates a string field whose value is masked. Slack tokens keep
// their type prefix ("xoxb-", "xoxp-", ...); everything else is starred out.
func Redact(key, secret string) Field {
	return Field{Key: key, Value: RedactString(secret)}
}

// RedactString masks secret the same way Redact does.
func RedactString(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) > redactedPrefix && strings.HasPrefix(secret, "xox") {
		return secret[:redactedPrefix] + "*****"
	}
	return "*****"
}
