/*
DESCRIPTION
  device.go provides FrameSource, an interface that describes a configurable
  video device that can be started and stopped and from which decoded frames
  may be obtained.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package device provides an interface and implementations for frame sources
// that can be started and stopped and from which video frames can be obtained.
package device

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/ausocean/panels/tracker/config"
)

// ErrBadFrame is returned, possibly wrapped, by Next when a frame could not be
// obtained or decoded but the source is still usable. Callers should skip the
// frame and call Next again.
var ErrBadFrame = errors.New("bad frame")

// FrameSource describes a configurable video device from which frames can be
// obtained.
type FrameSource interface {
	// Name returns the name of the FrameSource.
	Name() string

	// Set allows for configuration of the FrameSource using a Config struct.
	// All, some or none of the fields of the Config struct may be used for
	// configuration by an implementation. An implementation should specify
	// what fields are considered.
	Set(c config.Config) error

	// Start will start the FrameSource capturing; after which the Next method
	// may be called to obtain frames.
	Start() error

	// Stop will stop the FrameSource from capturing. From this point calls to
	// Next return io.EOF.
	Stop() error

	// IsRunning is used to determine if the device is running.
	IsRunning() bool

	// Next blocks until the next frame is available and returns it. An error
	// wrapping ErrBadFrame indicates a frame that should be skipped; io.EOF
	// indicates the source has ended. Any other error is a loss of the source.
	Next() (image.Image, error)
}

// MultiError implements the built in error interface. MultiError is used here
// to collect multiple errors during validation of configuration parameters
// for FrameSources.
type MultiError []error

func (me MultiError) Error() string {
	if len(me) == 0 {
		panic("device: invalid use of MultiError")
	}
	return fmt.Sprintf("%v", []error(me))
}

// Manual is an implementation of FrameSource that represents a manual input
// mechanism, i.e. frames are written to this source through software. Each
// Write blocks until the frame has been taken by Next, or the source stopped.
type Manual struct {
	mu        sync.Mutex
	isRunning bool
	frames    chan image.Image
	done      chan struct{}
}

// NewManual provides a new Manual source.
func NewManual() *Manual {
	return &Manual{}
}

// Name returns the name of Manual i.e. "Manual".
func (m *Manual) Name() string { return "Manual" }

// Set is a stub to satisfy the FrameSource interface; no configuration fields
// are required by Manual.
func (m *Manual) Set(c config.Config) error { return nil }

// Start readies the source for writes.
func (m *Manual) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isRunning {
		return nil
	}
	m.frames = make(chan image.Image)
	m.done = make(chan struct{})
	m.isRunning = true
	return nil
}

// Stop ends the source; pending and later calls to Next return io.EOF.
func (m *Manual) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isRunning {
		return nil
	}
	close(m.done)
	m.isRunning = false
	return nil
}

// IsRunning returns true if Start has been called and Stop has not been
// called after.
func (m *Manual) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isRunning
}

// Write passes img to the next call to Next. A nil img is delivered as a bad
// frame.
func (m *Manual) Write(img image.Image) error {
	frames, done, err := m.chans()
	if err != nil {
		return errors.New("manual input has not been started, can't write")
	}
	select {
	case frames <- img:
		return nil
	case <-done:
		return io.ErrClosedPipe
	}
}

// Next returns the next frame written to the source.
func (m *Manual) Next() (image.Image, error) {
	frames, done, err := m.chans()
	if err != nil {
		return nil, err
	}
	select {
	case img := <-frames:
		if img == nil {
			return nil, fmt.Errorf("manual: nil frame: %w", ErrBadFrame)
		}
		return img, nil
	case <-done:
		return nil, io.EOF
	}
}

func (m *Manual) chans() (chan image.Image, chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == nil {
		return nil, nil, io.EOF
	}
	return m.frames, m.done, nil
}
