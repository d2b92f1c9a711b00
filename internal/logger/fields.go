package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCommand is the structured log field key for the command name.
	FieldCommand = "command"
	// FieldInput is the structured log field key for the raw command line.
	FieldInput = "input"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger. A nil logger is
// replaced by a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommandFields returns the fields describing one command line.
func CommandFields(name, input string) []zap.Field {
	return StringFields(
		StringField{Key: FieldCommand, Value: name},
		StringField{Key: FieldInput, Value: input},
	)
}
