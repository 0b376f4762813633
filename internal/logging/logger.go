// Package logging provides a small logging abstraction so the rest of the
// application does not depend on a concrete logging framework. The production
// implementation is backed by logrus; tests use MockLogger.
package logging

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached to every entry.
	WithError(err error) Logger
	// WithField returns a logger with a single field attached to every entry.
	WithField(key string, value interface{}) Logger
}

// Standardized field names. Keeping these in one place makes the log output
// consistent and easy to filter.
const (
	FieldAccount     = "account_id"
	FieldCategory    = "category_id"
	FieldTransaction = "transaction_id"
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldMode        = "mode"
	FieldEmail       = "email"
	FieldOperation   = "operation"
	FieldCount       = "count"
	FieldFile        = "file_path"
)
