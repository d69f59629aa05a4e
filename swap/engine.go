/*
DESCRIPTION
  engine.go provides Engine, the locked-session state machine that consumes
  debounced face-up readings and commits panel swaps, exchanging identities
  and reference images exactly once per physical swap gesture.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package swap provides detection of panel swaps from debounced face-up
// states.
package swap

import (
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/google/uuid"

	"github.com/ausocean/panels/debounce"
	"github.com/ausocean/panels/grid"
)

// Used to indicate package in logging.
const pkg = "swap: "

// DefaultCooldown is the default minimum interval between committed swaps.
const DefaultCooldown = 600 * time.Millisecond

// Swap describes a committed swap. A is always the lower slot index. IDA and
// IDB are the identities held by slots A and B after the exchange.
type Swap struct {
	A, B     int
	IDA, IDB string
	At       time.Time
}

// Engine holds the state of a locked session: the grid, one confirmation
// window per slot, the swap lock and the time of the last swap. All methods
// are expected to be called from a single goroutine.
type Engine struct {
	id       string
	grid     *grid.Grid
	confirm  *debounce.Bank
	cooldown time.Duration
	log      logging.Logger

	locked bool      // Set on commit, cleared when no slot is confirmed up.
	last   time.Time // Time of the last committed swap.
	swaps  []Swap
}

// New returns an Engine for g with confirmation windows of size k. The swap
// lock starts released and no swap is considered to have happened yet.
func New(g *grid.Grid, k int, cooldown time.Duration, l logging.Logger) *Engine {
	if cooldown < 0 {
		cooldown = 0
	}
	return &Engine{
		id:       uuid.NewString(),
		grid:     g,
		confirm:  debounce.NewBank(g.Len(), k),
		cooldown: cooldown,
		log:      l,
	}
}

// ID returns the session identifier.
func (e *Engine) ID() string { return e.id }

// Grid returns the session grid.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Locked reports whether the swap lock is held.
func (e *Engine) Locked() bool { return e.locked }

// Swaps returns the swaps committed so far in this session, oldest first.
func (e *Engine) Swaps() []Swap {
	s := make([]Swap, len(e.swaps))
	copy(s, e.swaps)
	return s
}

// Observe pushes one raw face-up reading per slot into the confirmation
// windows and returns the confirmed-up slot indices in ascending order.
// Slots without a reading in raw are treated as face-down.
func (e *Engine) Observe(raw []bool) []int {
	var up []int
	for i := 0; i < e.confirm.Len(); i++ {
		v := i < len(raw) && raw[i]
		if e.confirm.Observe(i, v) {
			up = append(up, i)
		}
	}
	return up
}

// Decide applies the swap rules to the confirmed-up set for the frame seen at
// now. Exactly two confirmed slots with the lock released and the cooldown
// elapsed commit a swap; an empty set releases the lock; anything else is
// ignored. The committed swap, if any, is returned.
//
// An empty set only counts as the panels being lowered once every window has
// refilled since the last commit cleared them.
func (e *Engine) Decide(up []int, now time.Time) (Swap, bool) {
	switch len(up) {
	case 0:
		if e.locked && e.confirm.Full() {
			e.log.Debug(pkg+"swap lock released", "session", e.id)
			e.locked = false
		}
		return Swap{}, false
	case 2:
		if e.locked || now.Sub(e.last) <= e.cooldown {
			return Swap{}, false
		}
	default:
		return Swap{}, false
	}

	a, b := up[0], up[1]
	if a > b {
		a, b = b, a
	}
	e.grid.Swap(a, b)
	e.locked = true
	e.last = now
	e.confirm.ClearAll()

	s := Swap{A: a, B: b, IDA: e.grid.ID(a), IDB: e.grid.ID(b), At: now}
	e.swaps = append(e.swaps, s)
	e.log.Info(pkg+"swap triggered", "session", e.id, "slots", []int{a, b}, "ids", s.IDA+" <-> "+s.IDB)
	return s, true
}

// Step is Observe followed by Decide.
func (e *Engine) Step(raw []bool, now time.Time) ([]int, Swap, bool) {
	up := e.Observe(raw)
	s, ok := e.Decide(up, now)
	return up, s, ok
}
