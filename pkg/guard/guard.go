// Package guard provides an explicit "attempt, on failure substitute a
// defined default" combinator. Pipelines whose intermediate failures must
// degrade rather than abort (image conditioning stages, PDF image placement,
// storage cleanup) express that policy through these helpers instead of
// scattering recover/ignore logic.
package guard

import "log/slog"

// Attempt runs fn against input and returns its result. If fn returns an
// error, the input is returned unchanged and the failure is logged at debug
// level under the given stage name.
func Attempt[T any](logger *slog.Logger, stage string, input T, fn func(T) (T, error)) T {
	out, err := fn(input)
	if err != nil {
		if logger != nil {
			logger.Debug("stage failed, keeping input", "stage", stage, "error", err)
		}
		return input
	}
	return out
}

// Swallow runs fn and logs a warning on failure. It is used for best-effort
// side effects whose errors must not propagate, such as blob cleanup.
func Swallow(logger *slog.Logger, action string, fn func() error) {
	if err := fn(); err != nil && logger != nil {
		logger.Warn("best-effort action failed", "action", action, "error", err)
	}
}
