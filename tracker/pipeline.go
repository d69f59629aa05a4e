/*
DESCRIPTION
  pipeline.go provides functionality for set up of the tracker pipeline and
  the per-frame processing of previewed and locked frames.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Alan Noble <alan@ausocean.org>
  Dan Kortschak <dan@ausocean.org>
  Trek Hopton <trek@ausocean.org>
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tracker

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ausocean/panels/classify"
	"github.com/ausocean/panels/detect"
	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/device/camera"
	"github.com/ausocean/panels/device/file"
	"github.com/ausocean/panels/device/webcam"
	"github.com/ausocean/panels/display"
	"github.com/ausocean/panels/grid"
	"github.com/ausocean/panels/overlay"
	"github.com/ausocean/panels/tracker/config"
)

func (t *Tracker) setConfig(c config.Config) error {
	if c.Logger == nil {
		return errors.New("no logger in config")
	}
	c.Logger.Debug(pkg + "validating config")
	err := c.Validate()
	if err != nil {
		return errors.New("config struct is bad: " + err.Error())
	}
	c.Logger.Info(pkg + "config validated")
	c.Logger.SetLevel(c.LogLevel)
	t.cfg = c
	return nil
}

// setupPipeline constructs the input, detector and classifier selected by
// the config.
func (t *Tracker) setupPipeline() error {
	switch t.cfg.Input {
	case config.InputCamera:
		t.cfg.Logger.Debug(pkg + "using camera input")
		t.input = camera.New(t.cfg.Logger)
	case config.InputV4L:
		t.cfg.Logger.Debug(pkg + "using V4L input")
		t.input = webcam.New(t.cfg.Logger)
	case config.InputFile:
		t.cfg.Logger.Debug(pkg + "using file input")
		t.input = file.New(t.cfg.Logger)
	case config.InputManual:
		t.cfg.Logger.Debug(pkg + "using manual input")
		t.input = device.NewManual()
	default:
		return fmt.Errorf("unrecognised input type: %v", t.cfg.Input)
	}

	// Configure the input device. We know that defaults are set, so no need to
	// return error, but we should log.
	t.cfg.Logger.Debug(pkg + "configuring input device")
	err := t.input.Set(t.cfg)
	if err != nil {
		t.cfg.Logger.Warning(pkg+"errors from configuring input device", "errors", err)
	}
	t.cfg.Logger.Info(pkg+"input device configured", "input", t.input.Name())

	t.det = detect.New(t.cfg)
	t.cls = classify.New(t.cfg)
	return nil
}

// Process runs one frame through the pipeline and returns the scene to show.
// While previewing, panels are detected and outlined. While locked, each
// slot is classified and debounced, swaps are committed, and each slot's
// reference is blended over the live view. frame is not modified.
func (t *Tracker) Process(frame image.Image, now time.Time) display.Scene {
	if t.eng == nil {
		return t.preview(frame)
	}
	return t.track(frame, now)
}

func (t *Tracker) preview(frame image.Image) display.Scene {
	rects, err := t.det.Detect(frame)
	if err != nil {
		t.cfg.Logger.Warning(pkg+"could not detect panels", "error", err)
	}
	s := display.Scene{
		Frame:  frame,
		Boxes:  make([]display.Box, len(rects)),
		Status: fmt.Sprintf("Detected: %d -> %s", len(rects), grid.DifficultyOf(len(rects)).Label()),
	}
	for i, r := range rects {
		s.Boxes[i] = display.Box{Rect: r, State: display.StatePreview}
	}
	return s
}

func (t *Tracker) track(frame image.Image, now time.Time) display.Scene {
	g := t.eng.Grid()
	bounds := frame.Bounds()

	// Slot geometry may lie partly or wholly outside this frame.
	regions := make([]image.Image, g.Len())
	raw := make([]bool, g.Len())
	for i := range raw {
		r := g.Rect(i).Intersect(bounds)
		if r.Empty() {
			continue
		}
		regions[i] = region(frame, r)
		raw[i] = t.cls.FaceUp(regions[i])
	}

	up, _, _ := t.eng.Step(raw, now)
	isUp := make([]bool, g.Len())
	for _, i := range up {
		isUp[i] = true
	}

	out := grid.Crop(frame, bounds)
	s := display.Scene{
		Frame:  out,
		Boxes:  make([]display.Box, g.Len()),
		Status: "Mode: " + g.Difficulty().Label(),
		Locked: true,
	}
	for i := range s.Boxes {
		if regions[i] != nil {
			overlay.Compose(out, regions[i].Bounds(), overlay.Blend(regions[i], g.Ref(i), t.cfg.Alpha))
		}
		state := display.StateDown
		if isUp[i] {
			state = display.StateUp
		}
		s.Boxes[i] = display.Box{Rect: g.Rect(i), Label: g.ID(i), State: state}
	}
	return s
}

// region returns the part of frame inside r, sharing pixels where the frame
// supports it.
func region(frame image.Image, r image.Rectangle) image.Image {
	if s, ok := frame.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	return grid.Crop(frame, r)
}
