/*
DESCRIPTION
  webcam.go provides an implementation of FrameSource for Video4Linux webcams
  read through ffmpeg.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package webcam provides an implementation of FrameSource for webcams.
package webcam

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/panels/codec/jpeg"
	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "webcam: "

// Configuration defaults.
const (
	defaultInputPath = "/dev/video0"
	defaultWidth     = 1280
	defaultHeight    = 720
)

// Configuration field errors.
var (
	errBadWidth     = errors.New("width bad or unset, defaulting")
	errBadHeight    = errors.New("height bad or unset, defaulting")
	errBadInputPath = errors.New("input path bad or unset, defaulting")
)

// Webcam is an implementation of the FrameSource interface for a Webcam.
// Webcam uses an ffmpeg process to pipe MJPEG video from the webcam.
type Webcam struct {
	out       io.ReadCloser
	s         *jpeg.Scanner
	log       logging.Logger
	cfg       config.Config
	cmd       *exec.Cmd
	mu        sync.Mutex
	isRunning bool
}

// New returns a new Webcam.
func New(l logging.Logger) *Webcam {
	return &Webcam{log: l}
}

// Name returns the name of the device.
func (w *Webcam) Name() string {
	return "Webcam"
}

// Set will validate the InputPath, Width and Height fields of the given
// Config struct and assign the struct to the Webcam's Config. If fields are
// not valid, an error is added to the MultiError and a default value is used.
func (w *Webcam) Set(c config.Config) error {
	var errs device.MultiError
	if c.InputPath == "" {
		errs = append(errs, errBadInputPath)
		c.InputPath = defaultInputPath
	}

	if c.Width == 0 {
		errs = append(errs, errBadWidth)
		c.Width = defaultWidth
	}

	if c.Height == 0 {
		errs = append(errs, errBadHeight)
		c.Height = defaultHeight
	}

	w.cfg = c
	if len(errs) != 0 {
		return errs
	}
	return nil
}

// args returns the ffmpeg arguments for the current configuration.
func (w *Webcam) args() []string {
	return []string{
		"-loglevel", "error",
		"-f", "v4l2",
		"-video_size", fmt.Sprintf("%dx%d", w.cfg.Width, w.cfg.Height),
		"-i", w.cfg.InputPath,
		"-f", "mjpeg",
		"-q:v", "3",
		"-",
	}
}

// Start will build the required arguments for ffmpeg and then execute the
// command, piping video output to be framed by Next.
func (w *Webcam) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	args := w.args()
	w.log.Info(pkg+"ffmpeg args", "args", strings.Join(args, " "))
	w.cmd = exec.Command("ffmpeg", args...)

	var err error
	w.out, err = w.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create pipe: %w", err)
	}

	stderr, err := w.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("could not pipe command error: %w", err)
	}

	w.log.Info(pkg + "starting webcam")
	err = w.cmd.Start()
	if err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}
	w.s = jpeg.NewScanner(w.out)
	w.isRunning = true

	go func() {
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			w.log.Error(pkg+"error from webcam stderr", "error", sc.Text())
		}
		w.log.Info(pkg + "finished checking stderr")
	}()

	w.log.Info(pkg + "webcam started")
	return nil
}

// Stop will kill the ffmpeg process and close the output pipe.
func (w *Webcam) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.isRunning {
		return nil
	}
	w.isRunning = false
	if w.cmd == nil || w.cmd.Process == nil {
		return errors.New("ffmpeg process was never started")
	}
	err := w.cmd.Process.Kill()
	if err != nil {
		return fmt.Errorf("could not kill ffmpeg process: %w", err)
	}
	w.cmd.Wait()
	return nil
}

// Next reads and decodes the next JPEG frame from ffmpeg. If ffmpeg exits the
// source is considered lost.
func (w *Webcam) Next() (image.Image, error) {
	w.mu.Lock()
	s, running := w.s, w.isRunning
	w.mu.Unlock()
	if !running {
		return nil, io.EOF
	}

	b, err := s.Next()
	if err != nil {
		if !w.IsRunning() {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("webcam stream lost: %w", err)
	}
	img, err := jpeg.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", device.ErrBadFrame, err)
	}
	return img, nil
}

// IsRunning is used to determine if the webcam is running.
func (w *Webcam) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}
