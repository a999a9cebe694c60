// Package timex holds small wall-clock helpers shared by the clock and the
// renderer.
package timex

import (
	"context"
	"time"
)

const MinutesPerDay = 24 * 60

// MinuteOfDay returns h*60+m.
func MinuteOfDay(h, m int) int { return h*60 + m }

// MinutesSince returns how many minutes before 'now' the time-of-day 'then'
// last occurred, in [0, MinutesPerDay). Both are minute-of-day values.
func MinutesSince(now, then int) int {
	d := (now - then) % MinutesPerDay
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}

// Sleep waits for d or until ctx is done, returning ctx.Err() in the latter
// case.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
