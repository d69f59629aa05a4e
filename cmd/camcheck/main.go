//go:build withcv
// +build withcv

/*
DESCRIPTION
  camcheck scans capture device indices and previews each working device so
  the operator can find the CameraID to give the panel tracker.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/ausocean/panels/device/camera"
	"github.com/ausocean/panels/tracker/config"
	"github.com/ausocean/utils/logging"
)

// Preview text colours.
var (
	green = color.RGBA{0, 255, 0, 0}
	white = color.RGBA{255, 255, 255, 0}
)

func main() {
	var (
		maxIndex = flag.Int("max", 10, "highest device index to scan")
		width    = flag.Uint("width", 1280, "capture width")
		height   = flag.Uint("height", 720, "capture height")
		verbose  = flag.Bool("v", false, "log device activity to stderr")
	)
	flag.Parse()

	var log logging.Logger = logging.New(logging.Error, &bytes.Buffer{}, true)
	if *verbose {
		log = logging.New(logging.Debug, os.Stderr, true)
	}

	fmt.Printf("Scanning for capture devices (indices 0-%d)...\n", *maxIndex)
	var found []string
	for i := 0; i <= *maxIndex; i++ {
		id := strconv.Itoa(i)
		if probe(id, *width, *height, log) {
			found = append(found, id)
		}
	}
	if len(found) == 0 {
		fmt.Println("No cameras detected, check the USB connection.")
		os.Exit(1)
	}
	fmt.Printf("Found %d camera(s) at index(es): %v\n", len(found), found)
	fmt.Println("Starting previews. Press n for the next camera, or q to quit.")

	window := gocv.NewWindow("Camera Check")
	defer window.Close()

	for pos := 0; ; pos = (pos + 1) % len(found) {
		id := found[pos]
		if preview(window, id, *width, *height, log) {
			fmt.Printf("Final selection: CameraID=%s\n", id)
			return
		}
		fmt.Printf("Switching from device %s...\n", id)
	}
}

// probe reports whether device id opens and yields a frame.
func probe(id string, width, height uint, l logging.Logger) bool {
	c := camera.New(l)
	c.Set(config.Config{CameraID: id, Width: width, Height: height})
	if err := c.Start(); err != nil {
		return false
	}
	defer c.Stop()
	_, err := c.Next()
	return err == nil
}

// preview shows device id until the operator moves on or quits. It returns
// true on quit.
func preview(w *gocv.Window, id string, width, height uint, l logging.Logger) bool {
	c := camera.New(l)
	c.Set(config.Config{CameraID: id, Width: width, Height: height})
	if err := c.Start(); err != nil {
		fmt.Printf("Could not open device %s: %v\n", id, err)
		return false
	}
	defer c.Stop()

	for {
		frame, err := c.Next()
		if err != nil {
			return false
		}
		img, err := gocv.ImageToMatRGB(frame)
		if err != nil {
			continue
		}
		b := frame.Bounds()
		gocv.PutText(&img, "Testing CameraID: "+id, image.Pt(20, 50), gocv.FontHersheySimplex, 1, green, 2)
		gocv.PutText(&img, "Press n for next device, q to quit", image.Pt(20, 100), gocv.FontHersheySimplex, 0.7, white, 2)
		gocv.PutText(&img, fmt.Sprintf("Resolution: %dx%d", b.Dx(), b.Dy()), image.Pt(20, 140), gocv.FontHersheySimplex, 0.7, white, 2)
		w.IMShow(img)
		img.Close()

		switch w.WaitKey(1) & 0xff {
		case 'n', 'N':
			return false
		case 'q', 'Q', 27:
			return true
		}
	}
}
