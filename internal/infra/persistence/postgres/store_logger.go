package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// storeLogger sends gorm output to the logger of the request that issued the
// statement, so queries carry the request id of the API call or refresh job.
type storeLogger struct {
	fallback      *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newStoreLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &storeLogger{
		fallback:      baseLogger,
		level:         logger.Warn,
		slowThreshold: cfg.Database.SlowQueryThreshold,
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}

	return l
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *storeLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	log := l.requestLogger(ctx)
	if l.level < threshold || log == nil {
		return
	}

	log.LogAttrs(ctx, level, "Store message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace reports failed statements, statements over the slow threshold and, in debug, every statement.
// A missing row is an expected outcome of cache lookups and is not reported.
func (l *storeLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	log := l.requestLogger(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Store statement failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow store statement", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Store statement"
	default:
		return
	}

	statement, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	log.LogAttrs(ctx, level, msg, attrs...)
}

func (l *storeLogger) requestLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
