package middleware

import "log/slog"

// SlogAdapter adapts *slog.Logger to CORSLogger.
type SlogAdapter struct {
	Logger *slog.Logger
}

// Info logs msg with fields as attributes.
func (a *SlogAdapter) Info(msg string, fields map[string]interface{}) {
	a.Logger.Info(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.Logger.Warn(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.Logger.Debug(msg, toAttrs(fields)...)
}

func toAttrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return args
}
