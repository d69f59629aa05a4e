//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces detectors that use the gocv package when Circle-CI builds the
  tracker. This is needed because Circle-CI does not have a copy of Open CV
  installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package detect

import "github.com/ausocean/panels/tracker/config"

// NewContour returns a Basic detector in builds without OpenCV.
func NewContour(c config.Config) Detector {
	c.Logger.Warning(pkg + "contour detector unavailable without OpenCV, using basic")
	return NewBasic(c)
}
