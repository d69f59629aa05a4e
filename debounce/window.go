/*
DESCRIPTION
  window.go provides the rolling confirmation window used to debounce the
  per-frame face-up readings of each panel slot.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package debounce provides temporal debouncing of noisy boolean readings.
package debounce

// DefaultSize is the default confirmation window size.
const DefaultSize = 2

// Window holds the most recent readings up to a fixed capacity, evicting the
// oldest first.
type Window struct {
	buf  []bool
	head int // Index of the oldest reading.
	n    int // Number of readings held.
}

// NewWindow returns a Window of capacity k. A k below 1 is taken as 1.
func NewWindow(k int) *Window {
	if k < 1 {
		k = 1
	}
	return &Window{buf: make([]bool, k)}
}

// Push adds a reading, evicting the oldest if the window is full.
func (w *Window) Push(v bool) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++
		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

// Confirmed reports whether the window is full and every reading is true.
func (w *Window) Confirmed() bool {
	if w.n != len(w.buf) {
		return false
	}
	for _, v := range w.buf {
		if !v {
			return false
		}
	}
	return true
}

// Len returns the number of readings held.
func (w *Window) Len() int { return w.n }

// Cap returns the window capacity.
func (w *Window) Cap() int { return len(w.buf) }

// Clear discards all readings.
func (w *Window) Clear() {
	w.head, w.n = 0, 0
}

// Bank is a set of windows, one per panel slot.
type Bank struct {
	w []*Window
}

// NewBank returns a Bank of n empty windows of capacity k.
func NewBank(n, k int) *Bank {
	b := &Bank{w: make([]*Window, n)}
	for i := range b.w {
		b.w[i] = NewWindow(k)
	}
	return b
}

// Observe pushes reading v for slot i and returns the slot's confirmed state.
func (b *Bank) Observe(i int, v bool) bool {
	b.w[i].Push(v)
	return b.w[i].Confirmed()
}

// Window returns the window for slot i.
func (b *Bank) Window(i int) *Window { return b.w[i] }

// Len returns the number of slots.
func (b *Bank) Len() int { return len(b.w) }

// Full reports whether every window holds a full set of readings.
func (b *Bank) Full() bool {
	for _, w := range b.w {
		if w.Len() != w.Cap() {
			return false
		}
	}
	return true
}

// ClearAll empties every window.
func (b *Bank) ClearAll() {
	for _, w := range b.w {
		w.Clear()
	}
}
