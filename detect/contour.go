//go:build withcv
// +build withcv

/*
DESCRIPTION
  contour.go provides Contour, a panel detector that bounds the external
  contours of the thresholded gray frame using gocv.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package detect

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/panels/grid"
	"github.com/ausocean/panels/tracker/config"
)

// Contour is a Detector using OpenCV external contours.
type Contour struct {
	debugging debugWindows
	p         params
	gray      gocv.Mat
	bin       gocv.Mat
}

// NewContour returns a pointer to a new Contour detector.
func NewContour(c config.Config) Detector {
	return &Contour{
		p:         newParams(c),
		gray:      gocv.NewMat(),
		bin:       gocv.NewMat(),
		debugging: newWindows("CONTOUR"),
	}
}

// Close frees resources used by gocv. It has to be done manually,
// due to gocv using c-go.
func (d *Contour) Close() error {
	d.gray.Close()
	d.bin.Close()
	return d.debugging.close()
}

// Detect implements Detector.
func (d *Contour) Detect(frame image.Image) ([]image.Rectangle, error) {
	img, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return nil, fmt.Errorf("could not convert frame: %w", err)
	}
	defer img.Close()

	gocv.CvtColor(img, &d.gray, gocv.ColorBGRToGray)
	gocv.Threshold(d.gray, &d.bin, float32(d.p.thresh), 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(d.bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	off := frame.Bounds().Min
	var rects []image.Rectangle
	for i := 0; i < contours.Size(); i++ {
		r := gocv.BoundingRect(contours.At(i))
		if !d.p.accept(r.Dx(), r.Dy()) {
			continue
		}
		rects = append(rects, r.Add(off))
	}
	grid.Order(rects, d.p.rowHeight)

	d.debugging.show(img, d.bin, rects, fmt.Sprintf("Candidates: %d", len(rects)))
	return rects, nil
}
