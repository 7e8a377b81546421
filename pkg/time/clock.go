package time

import (
	"context"
	"time"
)

const nowContextKey contextKey = iota

type (
	// Clock is read by token issuing and project timestamps instead of time.Now.
	Clock interface {
		Now(context.Context) time.Time
	}

	// AdjustableClock pins the current time per context, so token expiry can be checked at an exact instant.
	AdjustableClock interface {
		Clock
		// Set makes every Now on the returned context report t.
		Set(ctx context.Context, t time.Time) context.Context
		// Freeze keeps an already pinned time or pins the wall clock.
		Freeze(context.Context) context.Context
	}

	contextClock struct{}
	contextKey   int
)

func NewAdjustableClock() AdjustableClock {
	return contextClock{}
}

func (contextClock) Now(ctx context.Context) time.Time {
	if pinned, ok := pinnedTime(ctx); ok {
		return pinned
	}

	return time.Now()
}

func (contextClock) Set(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowContextKey, t)
}

func (c contextClock) Freeze(ctx context.Context) context.Context {
	if _, ok := pinnedTime(ctx); ok {
		return ctx
	}

	return c.Set(ctx, time.Now())
}

func pinnedTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(nowContextKey).(time.Time)
	return t, ok
}
