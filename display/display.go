/*
DESCRIPTION
  display.go provides the Scene rendered for each processed frame, the
  operator commands and the Sink interface connecting the tracker to a
  display.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package display provides rendering of tracker scenes and polling of
// operator commands.
package display

import (
	"image"
	"image/color"
	"unicode"
)

// Used to indicate package in logging.
const pkg = "display: "

// State is the drawn state of a panel box.
type State int

// Panel box states.
const (
	StatePreview State = iota // Candidate panel, not yet locked.
	StateUp                   // Locked slot confirmed face-up.
	StateDown                 // Locked slot not confirmed face-up.
)

// Box drawing colours and thicknesses.
var (
	ColorPreview = color.RGBA{255, 255, 255, 255}
	ColorUp      = color.RGBA{0, 255, 0, 255}
	ColorDown    = color.RGBA{0, 0, 255, 255}
	ColorLabel   = color.RGBA{255, 255, 0, 255}
	ColorLocked  = color.RGBA{0, 255, 0, 255}
)

// Color returns the colour boxes in state s are drawn with.
func (s State) Color() color.RGBA {
	switch s {
	case StateUp:
		return ColorUp
	case StateDown:
		return ColorDown
	default:
		return ColorPreview
	}
}

// Thickness returns the line thickness boxes in state s are drawn with.
func (s State) Thickness() int {
	if s == StatePreview {
		return 1
	}
	return 2
}

// Box is a rectangle drawn over the frame, with an optional label.
type Box struct {
	Rect  image.Rectangle
	Label string
	State State
}

// Scene is everything drawn for one frame.
type Scene struct {
	Frame  image.Image
	Boxes  []Box
	Status string
	Locked bool
}

// StatusColor returns the colour of the status text.
func (s Scene) StatusColor() color.RGBA {
	if s.Locked {
		return ColorLocked
	}
	return ColorLabel
}

// Command is an operator command.
type Command int

// Operator commands.
const (
	None Command = iota
	Lock
	Reset
	Quit
)

func (c Command) String() string {
	switch c {
	case Lock:
		return "lock"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

const keyEsc = 27

// ParseKey returns the command bound to key code k, ignoring case. Only the
// low byte of k is considered, as returned by window key polling.
func ParseKey(k int) Command {
	if k < 0 {
		return None
	}
	switch unicode.ToLower(rune(k & 0xff)) {
	case 's', 'l':
		return Lock
	case 'r':
		return Reset
	case 'q', keyEsc:
		return Quit
	default:
		return None
	}
}

// Sink shows scenes and reports operator commands.
type Sink interface {
	// Show displays s.
	Show(s Scene) error

	// Poll returns the pending operator command, or None, without blocking.
	Poll() Command

	Close() error
}
