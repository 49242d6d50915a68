// Package logger builds slog loggers for sigtoken commands and exposes
// attribute helpers that keep key names consistent.
//
// New takes functional options selecting format (text or json), level,
// output and static attributes. Helpers such as KeyID and TokenSize describe
// token activity without leaking secrets or payload contents:
//
//	log := logger.New(logger.WithFormat(logger.FormatJSON), logger.WithLevel(slog.LevelDebug))
//	log.Debug("token rejected", logger.KeyID(kp.ID()), logger.Error(err))
//
// Error returns an empty attribute for nil errors, so it can be passed
// unconditionally.
package logger
