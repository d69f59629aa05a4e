//go:build !debug && withcv
// +build !debug,withcv

/*
DESCRIPTION
  Replaces the contour detector debug windows in release builds.

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// debugWindows is used for displaying debug information for the detector.
type debugWindows struct{}

// close frees resources used by gocv.
func (d *debugWindows) close() error { return nil }

// newWindows creates debugging windows for the detector.
func newWindows(name string) debugWindows { return debugWindows{} }

// show displays debug information for the detector.
func (d *debugWindows) show(img, bin gocv.Mat, rects []image.Rectangle, text ...string) {}
