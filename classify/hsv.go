/*
DESCRIPTION
  hsv.go provides HSV, a face state classifier implemented without OpenCV.

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
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/panels/tracker/config"
)

// HSV classifies regions by their mean HSV saturation and value computed in
// Go. Saturation and value are on the OpenCV 8-bit scale of 0 to 255.
type HSV struct {
	t    thresholds
	s, v []float64
}

// NewHSV returns a pointer to a new HSV classifier.
func NewHSV(c config.Config) *HSV {
	return &HSV{t: newThresholds(c)}
}

// Close implements Classifier.
func (h *HSV) Close() error { return nil }

// FaceUp implements Classifier.
func (h *HSV) FaceUp(region image.Image) bool {
	s, v, ok := h.Means(region)
	if !ok {
		return false
	}
	return h.t.faceUp(s, v)
}

// Means returns the mean saturation and value of region. ok is false if the
// region is empty.
func (h *HSV) Means(region image.Image) (s, v float64, ok bool) {
	b := region.Bounds()
	n := b.Dx() * b.Dy()
	if n <= 0 {
		return 0, 0, false
	}
	h.s, h.v = h.s[:0], h.v[:0]

	if rgba, isRGBA := region.(*image.RGBA); isRGBA {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := rgba.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
				h.push(rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := region.At(x, y).RGBA()
				h.push(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			}
		}
	}
	return stat.Mean(h.s, nil), stat.Mean(h.v, nil), true
}

func (h *HSV) push(r, g, b uint8) {
	s, v := satVal(r, g, b)
	h.s = append(h.s, s)
	h.v = append(h.v, v)
}

// satVal returns the 8-bit HSV saturation and value of an RGB pixel, rounded
// as OpenCV stores them.
func satVal(r, g, b uint8) (s, v float64) {
	hi, lo := r, r
	for _, c := range [...]uint8{g, b} {
		if c > hi {
			hi = c
		}
		if c < lo {
			lo = c
		}
	}
	if hi == 0 {
		return 0, 0
	}
	return math.Round(255 * float64(hi-lo) / float64(hi)), float64(hi)
}
