// Package logger builds *slog.Logger instances from functional options and
// provides helpers for consistently named attributes.
//
// Options select the output format (text or json), the minimum level, the
// destination writer and static attributes attached to every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/logger"
//
//	level, err := logger.ParseLevel("debug")
//	if err != nil {
//		// handle error
//	}
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(level),
//		logger.WithOutput(os.Stderr),
//		logger.WithAttr(slog.String("app", "slugify")),
//	)
//	log.Debug("slug built", logger.Input(in), logger.Slug(out))
//
// The default logger writes JSON at INFO level to stdout.
package logger
