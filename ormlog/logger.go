// Package ormlog adapts zap to orm.Logger.
//
//	db := orm.New(sqlDB, orm.PostgreSQL).Debug(ormlog.New(zapLogger))
package ormlog

import (
	"context"

	"go.uber.org/zap"

	"github.com/mickamy/ormlatest/orm"
)

// Logger writes one debug entry per executed statement.
type Logger struct {
	z *zap.Logger
}

var _ orm.Logger = (*Logger)(nil)

// New returns a Logger backed by z. A nil z logs nothing.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z.Named("orm")}
}

func (l *Logger) Log(_ context.Context, query string, args ...any) {
	l.z.Debug("query", zap.String("sql", query), zap.Any("args", args))
}
