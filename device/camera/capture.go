//go:build withcv
// +build withcv

/*
DESCRIPTION
  capture.go opens capture devices with gocv.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package camera

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/panels/device"
)

type cvCapture struct {
	vc  *gocv.VideoCapture
	img gocv.Mat
}

// open opens the device identified by id, which may be an index or a URL, and
// requests the given resolution.
func open(id string, width, height uint) (capturer, error) {
	vc, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("could not open video capture device %s: %w", id, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("video capture device %s not opened", id)
	}
	vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	return &cvCapture{vc: vc, img: gocv.NewMat()}, nil
}

func (c *cvCapture) next() (image.Image, error) {
	if ok := c.vc.Read(&c.img); !ok {
		return nil, fmt.Errorf("video capture device closed")
	}
	if c.img.Empty() {
		return nil, fmt.Errorf("%w: empty frame", device.ErrBadFrame)
	}
	img, err := c.img.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", device.ErrBadFrame, err)
	}
	return img, nil
}

func (c *cvCapture) close() error {
	c.img.Close()
	return c.vc.Close()
}
