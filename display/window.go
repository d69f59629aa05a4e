//go:build withcv
// +build withcv

/*
DESCRIPTION
  window.go provides Window, a Sink drawing scenes in an OpenCV window.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Text layout.
const (
	statusScale = 0.7
	labelScale  = 0.6
	textWeight  = 2
)

var (
	statusOrigin = image.Pt(10, 30)
	labelOffset  = image.Pt(5, 25)
)

// Window is a Sink backed by a gocv window.
type Window struct {
	w *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) (*Window, error) {
	return &Window{w: gocv.NewWindow(title)}, nil
}

// Show draws s and displays it. The frame in s is not modified.
func (w *Window) Show(s Scene) error {
	img, err := gocv.ImageToMatRGB(s.Frame)
	if err != nil {
		return fmt.Errorf("could not convert frame: %w", err)
	}
	defer img.Close()

	for _, b := range s.Boxes {
		gocv.Rectangle(&img, b.Rect, b.State.Color(), b.State.Thickness())
		if b.Label != "" {
			gocv.PutText(&img, b.Label, b.Rect.Min.Add(labelOffset), gocv.FontHersheySimplex, labelScale, ColorLabel, textWeight)
		}
	}
	gocv.PutText(&img, s.Status, statusOrigin, gocv.FontHersheySimplex, statusScale, s.StatusColor(), textWeight)

	w.w.IMShow(img)
	return nil
}

// Poll waits briefly for a key press, which also lets the window redraw.
func (w *Window) Poll() Command {
	return ParseKey(w.w.WaitKey(1))
}

// Close frees resources used by gocv.
func (w *Window) Close() error {
	return w.w.Close()
}
