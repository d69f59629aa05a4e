/*
DESCRIPTION
  detect.go provides the Detector interface for finding candidate panel
  rectangles in a frame, and the parameter validation shared by detectors.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package detect provides detection of bright rectangular panels in frames.
package detect

import (
	"image"

	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "detect: "

// Default detection parameters.
const (
	defaultThreshold = 180
	defaultMinArea   = 4000
	defaultMaxArea   = 25000
	defaultRowHeight = 50
)

// Detector finds candidate panel rectangles in a frame. Rectangles are
// returned in reading order and are in the frame's coordinate space.
type Detector interface {
	Detect(frame image.Image) ([]image.Rectangle, error)
	Close() error
}

// params holds validated detection parameters.
type params struct {
	thresh           uint8
	minArea, maxArea int
	rowHeight        int
}

// newParams validates the detection fields of c, defaulting invalid ones.
func newParams(c config.Config) params {
	if c.BinaryThreshold == 0 || c.BinaryThreshold > 255 {
		c.LogInvalidField("BinaryThreshold", defaultThreshold)
		c.BinaryThreshold = defaultThreshold
	}
	if c.MaxPanelArea == 0 {
		c.LogInvalidField("MaxPanelArea", defaultMaxArea)
		c.MaxPanelArea = defaultMaxArea
	}
	if c.MinPanelArea == 0 || c.MinPanelArea >= c.MaxPanelArea {
		c.LogInvalidField("MinPanelArea", defaultMinArea)
		c.MinPanelArea = defaultMinArea
	}
	if c.RowHeight == 0 {
		c.LogInvalidField("RowHeight", defaultRowHeight)
		c.RowHeight = defaultRowHeight
	}
	return params{
		thresh:    uint8(c.BinaryThreshold),
		minArea:   int(c.MinPanelArea),
		maxArea:   int(c.MaxPanelArea),
		rowHeight: int(c.RowHeight),
	}
}

// accept reports whether a bounding box of w by h pixels may be a panel.
// Both bounds are exclusive.
func (p params) accept(w, h int) bool {
	a := w * h
	return a > p.minArea && a < p.maxArea
}

// New returns the Detector selected by c.Detector.
func New(c config.Config) Detector {
	switch c.Detector {
	case config.DetectorContour:
		return NewContour(c)
	default:
		return NewBasic(c)
	}
}
