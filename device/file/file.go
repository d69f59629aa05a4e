/*
DESCRIPTION
  file.go provides an implementation of the FrameSource interface for MJPEG
  files and files of concatenated JPEG images.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package file provides an implementation of FrameSource for files.
package file

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/panels/codec/jpeg"
	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "file: "

// File is an implementation of the FrameSource interface for a file
// containing MJPEG video.
type File struct {
	f         *os.File
	s         *jpeg.Scanner
	path      string
	loop      bool
	fps       uint
	tick      *time.Ticker
	isRunning bool
	log       logging.Logger
	set       bool
	mu        sync.Mutex
}

// New returns a new File.
func New(l logging.Logger) *File { return &File{log: l} }

// NewWith returns a new File with required params provided i.e. the Set
// method does not need to be called.
func NewWith(l logging.Logger, path string, loop bool, fps uint) *File {
	return &File{log: l, path: path, loop: loop, fps: fps, set: true}
}

// Name returns the name of the device.
func (m *File) Name() string {
	return "File"
}

// Set uses the InputPath, Loop and FileFPS fields of c.
func (m *File) Set(c config.Config) error {
	if c.InputPath == "" {
		return errors.New("no input path for file source")
	}
	m.path = c.InputPath
	m.loop = c.Loop
	m.fps = c.FileFPS
	m.set = true
	return nil
}

// Start will open the file at the location of the InputPath field of the
// config struct.
func (m *File) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return errors.New("file source has not been set with config")
	}
	var err error
	m.f, err = os.Open(m.path)
	if err != nil {
		return errors.Wrap(err, "could not open media file")
	}
	m.s = jpeg.NewScanner(m.f)
	if m.fps != 0 {
		m.tick = time.NewTicker(time.Second / time.Duration(m.fps))
	}
	m.isRunning = true
	m.log.Info(pkg+"started", "path", m.path, "loop", m.loop, "fps", m.fps)
	return nil
}

// Stop will close the file such that any further calls to Next return
// io.EOF.
func (m *File) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isRunning {
		return nil
	}
	m.isRunning = false
	if m.tick != nil {
		m.tick.Stop()
	}
	return m.f.Close()
}

// Next returns the next frame of the file, paced to FileFPS if set. At the
// end of the file Next either seeks back to the start, if looping, or returns
// io.EOF. A frame that fails to decode is reported as a bad frame.
func (m *File) Next() (image.Image, error) {
	m.mu.Lock()
	tick := m.tick
	m.mu.Unlock()
	if tick != nil {
		<-tick.C
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isRunning {
		return nil, io.EOF
	}

	b, err := m.s.Next()
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		if err == io.ErrUnexpectedEOF {
			m.log.Warning(pkg+"truncated frame at end of file", "path", m.path)
		}
		if !m.loop {
			return nil, io.EOF
		}
		m.log.Info(pkg + "looping input file")
		_, err = m.f.Seek(0, io.SeekStart)
		if err != nil {
			return nil, errors.Wrap(err, "could not seek to start of file for input loop")
		}
		m.s = jpeg.NewScanner(m.f)
		b, err = m.s.Next()
		if err != nil {
			return nil, errors.Wrap(err, "could not read after start seek")
		}
	case jpeg.ErrTooLarge:
		return nil, fmt.Errorf("%w: %v", device.ErrBadFrame, err)
	default:
		return nil, err
	}

	img, err := jpeg.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", device.ErrBadFrame, err)
	}
	return img, nil
}

// IsRunning is used to determine if the File device is running.
func (m *File) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.f != nil && m.isRunning
}
