/*
DESCRIPTION
  order.go provides reading order sorting of detected panel rectangles and
  the difficulty table keyed by panel count.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package grid

import (
	"image"
	"sort"
)

// DefaultRowHeight is the row bucket height in pixels used for reading order.
const DefaultRowHeight = 50

// Difficulty is the game difficulty inferred from the number of panels.
type Difficulty int

// Known difficulties.
const (
	Unknown Difficulty = iota
	Beginner
	Intermediate
	Advanced
)

var difficulties = map[int]Difficulty{
	12: Beginner,
	16: Intermediate,
	20: Advanced,
}

// DifficultyOf returns the difficulty for n panels; counts not in the table
// are Unknown.
func DifficultyOf(n int) Difficulty {
	d, ok := difficulties[n]
	if !ok {
		return Unknown
	}
	return d
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Layout returns the grid shape as rows x columns, or "" if unknown.
func (d Difficulty) Layout() string {
	switch d {
	case Beginner:
		return "3x4"
	case Intermediate:
		return "4x4"
	case Advanced:
		return "4x5"
	default:
		return ""
	}
}

// Label returns the display form of d, e.g. "Beginner (3x4)".
func (d Difficulty) Label() string {
	if l := d.Layout(); l != "" {
		return d.String() + " (" + l + ")"
	}
	return d.String()
}

// Order sorts rects in place into reading order and returns them. The primary
// key is the row bucket Min.Y/rowHeight and the secondary key is Min.X. The
// sort is stable so identical input always gives identical output.
func Order(rects []image.Rectangle, rowHeight int) []image.Rectangle {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	sort.SliceStable(rects, func(i, j int) bool {
		ri, rj := rects[i].Min.Y/rowHeight, rects[j].Min.Y/rowHeight
		if ri != rj {
			return ri < rj
		}
		return rects[i].Min.X < rects[j].Min.X
	})
	return rects
}
