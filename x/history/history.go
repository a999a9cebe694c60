// Package history provides a fixed-capacity ring of recent samples,
// indexed newest-first.
//
// Storage is N+1 slots with explicit head/tail indices; one slot is left
// unused so that full and empty can be told apart without a counter. The
// backing slice is allocated once (New) or supplied by the caller (Over) and
// never grows.
package history

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// History retains the N most recently pushed values.
type History[T constraints.Integer] struct {
	head int // next write slot
	tail int // oldest occupied slot
	buf  []T // N+1 slots
}

// New returns an empty history holding up to n values.
func New[T constraints.Integer](n int) *History[T] {
	if n < 1 {
		panic("history: capacity must be >= 1")
	}
	return &History[T]{buf: make([]T, n+1)}
}

// Over returns an empty history backed by buf. Capacity is len(buf)-1.
// The caller must not touch buf afterwards.
func Over[T constraints.Integer](buf []T) *History[T] {
	if len(buf) < 2 {
		panic("history: backing slice must have at least 2 slots")
	}
	return &History[T]{buf: buf}
}

func (h *History[T]) slots() int { return len(h.buf) }

// Cap returns the logical capacity N.
func (h *History[T]) Cap() int { return len(h.buf) - 1 }

// Push inserts v as the newest element, discarding the oldest when full.
func (h *History[T]) Push(v T) {
	h.buf[h.head] = v
	h.head++
	if h.head == h.slots() {
		h.head = 0
	}
	if h.head == h.tail {
		h.tail++
		if h.tail == h.slots() {
			h.tail = 0
		}
	}
}

// Size returns the number of retained elements.
func (h *History[T]) Size() int {
	if h.head >= h.tail {
		return h.head - h.tail
	}
	return h.head + h.slots() - h.tail
}

// Empty reports Size() == 0.
func (h *History[T]) Empty() bool { return h.head == h.tail }

// slot maps a newest-first index to a buffer position.
func (h *History[T]) slot(i int) int {
	if i < 0 || i >= h.Size() {
		panic("history: index out of range")
	}
	first := h.head - 1
	if first < 0 {
		first = h.slots() - 1
	}
	if first >= i {
		return first - i
	}
	return first + h.slots() - i
}

// At returns the element i positions back from the newest (0 = newest).
// It panics if i >= Size().
func (h *History[T]) At(i int) T { return h.buf[h.slot(i)] }

// SetNewest overwrites the newest element in place. It panics when empty.
func (h *History[T]) SetNewest(v T) { h.buf[h.slot(0)] = v }

// Min returns the smallest retained value, or the largest value of T when
// empty.
func (h *History[T]) Min() T {
	m := maxOf[T]()
	for i, n := 0, h.Size(); i < n; i++ {
		if v := h.At(i); v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest retained value, or the lowest value of T when
// empty.
func (h *History[T]) Max() T {
	m := minOf[T]()
	for i, n := 0, h.Size(); i < n; i++ {
		if v := h.At(i); v > m {
			m = v
		}
	}
	return m
}

// Stats returns min, max and the mean rounded half away from zero, in one
// pass. On an empty history lo/hi are the sentinels and avg is 0.
func (h *History[T]) Stats() (lo, hi, avg T) {
	lo, hi = maxOf[T](), minOf[T]()
	n := h.Size()
	if n == 0 {
		return lo, hi, 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		v := h.At(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += int64(v)
	}
	half := int64(n) / 2
	if sum < 0 {
		half = -half
	}
	return lo, hi, T((sum + half) / int64(n))
}

func signed[T constraints.Integer]() bool {
	var z T
	return ^z < 0
}

func maxOf[T constraints.Integer]() T {
	var z T
	if !signed[T]() {
		return ^z
	}
	bits := unsafe.Sizeof(z) * 8
	return ^(T(1) << (bits - 1))
}

func minOf[T constraints.Integer]() T {
	var z T
	if !signed[T]() {
		return z
	}
	bits := unsafe.Sizeof(z) * 8
	return T(1) << (bits - 1)
}
