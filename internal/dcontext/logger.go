// Package dcontext carries a structured logger through a context.Context,
// the way a registry service threads request-scoped fields through its own
// handlers: each component adds fields (algorithm, table name, remote
// address) as it goes, rather than passing a *logrus.Logger around
// explicitly.
package dcontext

import (
	"context"

	"github.com/sirupsen/logrus"
)

var defaultLogger = logrus.StandardLogger().WithField("component", "hashassin")

type loggerKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithFields returns a context whose logger has the given fields merged in,
// inheriting whatever logger (or the package default) is already attached.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return WithLogger(ctx, GetLogger(ctx).WithFields(fields))
}

// GetLogger returns the logger attached to ctx, or the package default.
func GetLogger(ctx context.Context) *logrus.Entry {
	if l, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return l
	}
	return defaultLogger
}

// SetDefaultLevel configures the package-wide default logger's level.
func SetDefaultLevel(level logrus.Level) {
	logrus.SetLevel(level)
}
