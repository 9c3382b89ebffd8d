package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Input records the text being processed under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Slug records a produced slug under the key "slug".
func Slug(s string) slog.Attr {
	return slog.String("slug", s)
}

// Separator records the separator in use under the key "separator".
func Separator(s string) slog.Attr {
	return slog.String("separator", s)
}
