package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryKey struct{}

type slowQueryStart struct {
	sql   string
	start time.Time
}

// slowQueryTracer warns about statements slower than threshold.
type slowQueryTracer struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(log *zerolog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       log,
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{sql: data.SQL, start: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	started, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(started.start)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn()
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", started.sql).
		Msg("slow query")
}
