package logging

import (
	"context"
	"log/slog"
)

type Attr = slog.Attr

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func attrsToArgs(attrs []Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewComponentLogger tags logger with a component name. A nil logger
// yields a discarding one.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return logger.With(String(FieldComponent, component))
}

// defaultHints fills error_hint when the call site did not supply one.
var defaultHints = map[string]string{
	"missing_input":     "check the file path",
	"metadata_load":     "run exiftool -X on the file to inspect its output",
	"date_parse":        "fix ExifIFD:CreateDate or clear it",
	"unexpected_output": "compare the exiftool output with the expected update/unchanged phrasing",
	"write":             "check that exiftool can write the file",
	"walk":              "check directory permissions",
	"empty_glob":        "check the pattern and working directory",
}

// WarnWithContext logs a warning carrying event_type and error_hint.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, withEventFields(attrs, eventType)...)
}

// ErrorWithContext logs an error carrying event_type and error_hint.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, withEventFields(attrs, eventType)...)
}

func withEventFields(attrs []Attr, eventType string) []Attr {
	var hasType, hasHint bool
	for _, a := range attrs {
		switch a.Key {
		case FieldEventType:
			hasType = true
		case FieldErrorHint:
			hasHint = true
		}
	}
	if !hasType {
		attrs = append(attrs, String(FieldEventType, eventType))
	}
	if !hasHint {
		hint, ok := defaultHints[eventType]
		if !ok {
			hint = "check logs for details"
		}
		attrs = append(attrs, String(FieldErrorHint, hint))
	}
	return attrs
}
