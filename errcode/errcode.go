package errcode

import (
	"context"
	"errors"
)

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	InvalidConfig  Code = "invalid_config"
	UnknownVariant Code = "unknown_variant"
	InvalidParams  Code = "invalid_params"
	NotReady       Code = "not_ready"
	Timeout        Code = "timeout"
	RefreshFailed  Code = "refresh_failed"
	SensorRead     Code = "sensor_read"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns nil for a nil err, otherwise an *E carrying c.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return Error
}

// Driver sentinels that carry their own meaning implement one of these.
type timeouter interface{ Timeout() bool }
type notReadyer interface{ NotReady() bool }

// MapDriverErr maps low-level driver errors to a Code.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var t timeouter
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}
	var n notReadyer
	if errors.As(err, &n) && n.NotReady() {
		return NotReady
	}
	return SensorRead
}
