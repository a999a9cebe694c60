// Package clock provides the calendar and pacing source for the driver
// loop.
package clock

import (
	"context"
	"time"

	"picoplot-go/x/timex"
)

// Clock reports local calendar time and paces the loop.
type Clock interface {
	Weekday() int // 0 = Sunday
	Day() int     // 1..31
	Hour() int
	Minute() int
	// Sleep waits secs seconds of clock time.
	Sleep(ctx context.Context, secs int) error
}

// Pacer blocks for a span of real time.
type Pacer func(ctx context.Context, d time.Duration) error

// RealTime sleeps for the full duration.
func RealTime(ctx context.Context, d time.Duration) error { return timex.Sleep(ctx, d) }

// Instant returns immediately; time only advances on the soft clock.
func Instant(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Soft is a software RTC: a calendar advanced by Sleep.
type Soft struct {
	now  time.Time
	pace Pacer
}

// NewSoft starts a soft clock at start. A nil pace means Instant.
func NewSoft(start time.Time, pace Pacer) *Soft {
	if pace == nil {
		pace = Instant
	}
	return &Soft{now: start, pace: pace}
}

func (s *Soft) Weekday() int { return int(s.now.Weekday()) }
func (s *Soft) Day() int     { return s.now.Day() }
func (s *Soft) Hour() int    { return s.now.Hour() }
func (s *Soft) Minute() int  { return s.now.Minute() }

// Now returns the current calendar time.
func (s *Soft) Now() time.Time { return s.now }

// Set moves the calendar, e.g. after reading a hardware RTC.
func (s *Soft) Set(t time.Time) { s.now = t }

// Sleep paces for secs and then advances the calendar. The calendar is not
// advanced when pacing is cancelled.
func (s *Soft) Sleep(ctx context.Context, secs int) error {
	d := time.Duration(secs) * time.Second
	if err := s.pace(ctx, d); err != nil {
		return err
	}
	s.now = s.now.Add(d)
	return nil
}
