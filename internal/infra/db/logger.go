package db

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends gorm's messages through the application logger.
type gormLogger struct {
	entry *logrus.Entry
	level logger.LogLevel
	slow  time.Duration
}

func NewGormLogger(log *logrus.Logger, level logger.LogLevel) logger.Interface {
	return &gormLogger{
		entry: log.WithField("component", "gorm"),
		level: level,
		slow:  slowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.entry.WithContext(ctx).Infof(msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.entry.WithContext(ctx).Warnf(msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.entry.WithContext(ctx).Errorf(msg, args...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	fields := func() logrus.Fields {
		sql, rows := fc()
		return logrus.Fields{"sql": sql, "rows": rows, "duration_ms": elapsed.Milliseconds()}
	}

	switch {
	// 見つからないのは呼び出し側で扱う
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.entry.WithContext(ctx).WithFields(fields()).WithError(err).Error("sql failed")
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.entry.WithContext(ctx).WithFields(fields()).Warn("slow sql")
	case l.level >= logger.Info:
		l.entry.WithContext(ctx).WithFields(fields()).Debug("sql")
	}
}
