//go:build withcv
// +build withcv

/*
DESCRIPTION
  cv.go provides CV, a face state classifier using gocv colour conversion.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package classify

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/panels/tracker/config"
)

// CV classifies regions by their mean HSV saturation and value computed by
// OpenCV.
type CV struct {
	t   thresholds
	log func(msg string, args ...interface{})
	hsv gocv.Mat
}

// NewCV returns a new CV classifier.
func NewCV(c config.Config) Classifier {
	return &CV{t: newThresholds(c), log: c.Logger.Warning, hsv: gocv.NewMat()}
}

// Close frees resources used by gocv.
func (c *CV) Close() error { return c.hsv.Close() }

// FaceUp implements Classifier.
func (c *CV) FaceUp(region image.Image) bool {
	if region.Bounds().Empty() {
		return false
	}
	img, err := gocv.ImageToMatRGB(region)
	if err != nil {
		c.log(pkg+"could not convert region", "error", err)
		return false
	}
	defer img.Close()

	gocv.CvtColor(img, &c.hsv, gocv.ColorBGRToHSV)
	mean := c.hsv.Mean()
	return c.t.faceUp(mean.Val2, mean.Val3)
}
