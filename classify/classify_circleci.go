//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces classifiers that use the gocv package when Circle-CI builds the
  tracker. This is needed because Circle-CI does not have a copy of Open CV
  installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package classify

import "github.com/ausocean/panels/tracker/config"

// NewCV returns an HSV classifier in builds without OpenCV.
func NewCV(c config.Config) Classifier {
	c.Logger.Warning(pkg + "cv classifier unavailable without OpenCV, using hsv")
	return NewHSV(c)
}
