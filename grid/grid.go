/*
DESCRIPTION
  grid.go provides Grid, the locked set of panel slots for one tracking
  session, holding each slot's frozen geometry, its current content identity
  and its reference image.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package grid provides the panel grid model: slot geometry, identities,
// reference images, reading order and difficulty classification.
package grid

import (
	"fmt"
	"image"
	"image/draw"
)

// Slot is a read-only view of a single grid cell.
type Slot struct {
	Index int
	Rect  image.Rectangle
	ID    string
	Ref   image.Image
}

// Grid holds the slots of a locked session. Slot data is stored in parallel
// slices indexed by slot index; the number of slots never changes after New.
type Grid struct {
	rects []image.Rectangle
	ids   []string
	refs  []image.Image
	diff  Difficulty
}

// New returns a Grid for the given rectangles, which should already be in
// reading order. Reference images are deep copied from frame so that later
// frames cannot alter them. Identities default to "P1", "P2", ...
func New(frame image.Image, rects []image.Rectangle) *Grid {
	g := &Grid{
		rects: make([]image.Rectangle, len(rects)),
		ids:   make([]string, len(rects)),
		refs:  make([]image.Image, len(rects)),
		diff:  DifficultyOf(len(rects)),
	}
	copy(g.rects, rects)
	for i, r := range rects {
		g.ids[i] = DefaultID(i)
		g.refs[i] = Crop(frame, r)
	}
	return g
}

// DefaultID returns the identity label a slot has at lock time.
func DefaultID(i int) string { return fmt.Sprintf("P%d", i+1) }

// Len returns the number of slots.
func (g *Grid) Len() int { return len(g.rects) }

// Difficulty returns the difficulty inferred from the slot count at lock time.
func (g *Grid) Difficulty() Difficulty { return g.diff }

// Rect returns the frozen rectangle of slot i.
func (g *Grid) Rect(i int) image.Rectangle { return g.rects[i] }

// ID returns the content identity currently assigned to slot i.
func (g *Grid) ID(i int) string { return g.ids[i] }

// Ref returns the reference image currently assigned to slot i.
func (g *Grid) Ref(i int) image.Image { return g.refs[i] }

// Slot returns a view of slot i.
func (g *Grid) Slot(i int) Slot {
	return Slot{Index: i, Rect: g.rects[i], ID: g.ids[i], Ref: g.refs[i]}
}

// Slots returns views of all slots in index order.
func (g *Grid) Slots() []Slot {
	s := make([]Slot, len(g.rects))
	for i := range s {
		s[i] = g.Slot(i)
	}
	return s
}

// Swap exchanges the identity and reference image of slots i and j. Both
// fields of both slots change together; geometry is untouched.
func (g *Grid) Swap(i, j int) {
	if i == j {
		return
	}
	g.ids[i], g.ids[j] = g.ids[j], g.ids[i]
	g.refs[i], g.refs[j] = g.refs[j], g.refs[i]
}

// Crop returns a copy of the part of img inside r, clipped to img's bounds.
// The returned image has its origin at r's clipped minimum point. An empty
// intersection yields an empty image.
func Crop(img image.Image, r image.Rectangle) *image.RGBA {
	r = r.Intersect(img.Bounds())
	dst := image.NewRGBA(r)
	if r.Empty() {
		return dst
	}
	draw.Draw(dst, r, img, r.Min, draw.Src)
	return dst
}
