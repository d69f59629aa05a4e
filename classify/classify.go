/*
DESCRIPTION
  classify.go provides the Classifier interface for deciding whether a panel
  region shows the bright unsaturated face of a raised panel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package classify provides face state classification of panel regions.
package classify

import (
	"image"

	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "classify: "

// Default classification thresholds, on the OpenCV 8-bit HSV scale.
const (
	defaultSaturation = 85.0
	defaultBrightness = 100.0
)

// Classifier decides whether a region shows a face-up panel.
type Classifier interface {
	// FaceUp reports whether region is face-up. An empty region is never
	// face-up.
	FaceUp(region image.Image) bool
	Close() error
}

// thresholds holds validated classification thresholds.
type thresholds struct {
	sat, val float64
}

// faceUp applies the thresholds to the mean saturation and value of a region.
func (t thresholds) faceUp(meanS, meanV float64) bool {
	return meanS < t.sat && meanV > t.val
}

func newThresholds(c config.Config) thresholds {
	if c.SaturationThreshold <= 0 || c.SaturationThreshold > 255 {
		c.LogInvalidField("SaturationThreshold", defaultSaturation)
		c.SaturationThreshold = defaultSaturation
	}
	if c.BrightnessThreshold <= 0 || c.BrightnessThreshold > 255 {
		c.LogInvalidField("BrightnessThreshold", defaultBrightness)
		c.BrightnessThreshold = defaultBrightness
	}
	return thresholds{sat: c.SaturationThreshold, val: c.BrightnessThreshold}
}

// New returns the Classifier selected by c.Classifier.
func New(c config.Config) Classifier {
	switch c.Classifier {
	case config.ClassifierCV:
		return NewCV(c)
	default:
		return NewHSV(c)
	}
}
