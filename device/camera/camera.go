/*
DESCRIPTION
  camera.go provides an implementation of FrameSource for capture devices
  opened by index or URL through OpenCV.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package camera provides an implementation of FrameSource for capture
// devices opened through OpenCV. Builds without the withcv tag cannot capture
// and report an error from Start.
package camera

import (
	"errors"
	"image"
	"io"
	"sync"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "camera: "

// Configuration defaults.
const (
	defaultID     = "1"
	defaultWidth  = 1280
	defaultHeight = 720
)

// Configuration field errors.
var (
	errBadID     = errors.New("camera id bad or unset, defaulting")
	errBadWidth  = errors.New("width bad or unset, defaulting")
	errBadHeight = errors.New("height bad or unset, defaulting")
)

// capturer is a running capture session.
type capturer interface {
	next() (image.Image, error)
	close() error
}

// Camera is an implementation of the FrameSource interface for a capture
// device identified by CameraID.
type Camera struct {
	id            string
	width, height uint
	log           logging.Logger

	mu        sync.Mutex
	cap       capturer
	isRunning bool
}

// New returns a new Camera.
func New(l logging.Logger) *Camera {
	return &Camera{log: l, id: defaultID, width: defaultWidth, height: defaultHeight}
}

// Name returns the name of the device.
func (c *Camera) Name() string { return "Camera" }

// Set uses the CameraID, Width and Height fields of cfg. Invalid fields are
// defaulted and reported in a MultiError.
func (c *Camera) Set(cfg config.Config) error {
	var errs device.MultiError
	if cfg.CameraID == "" {
		errs = append(errs, errBadID)
		cfg.CameraID = defaultID
	}
	if cfg.Width == 0 {
		errs = append(errs, errBadWidth)
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		errs = append(errs, errBadHeight)
		cfg.Height = defaultHeight
	}
	c.id, c.width, c.height = cfg.CameraID, cfg.Width, cfg.Height
	if len(errs) != 0 {
		return errs
	}
	return nil
}

// Start opens the capture device.
func (c *Camera) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isRunning {
		return nil
	}
	cp, err := open(c.id, c.width, c.height)
	if err != nil {
		return err
	}
	c.cap = cp
	c.isRunning = true
	c.log.Info(pkg+"camera started", "id", c.id, "width", c.width, "height", c.height)
	return nil
}

// Stop releases the capture device.
func (c *Camera) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isRunning {
		return nil
	}
	c.isRunning = false
	return c.cap.close()
}

// IsRunning is used to determine if the camera is running.
func (c *Camera) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isRunning
}

// Next reads the next frame from the device.
func (c *Camera) Next() (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isRunning {
		return nil, io.EOF
	}
	return c.cap.next()
}
