/*
NAME
  tracker.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Alan Noble <alan@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tracker provides the main loop of the panel tracker: it reads
// frames, previews detected panels until an operator locks the grid, and
// then follows panel swaps, overlaying each panel's original content.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/ausocean/panels/classify"
	"github.com/ausocean/panels/detect"
	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/display"
	"github.com/ausocean/panels/grid"
	"github.com/ausocean/panels/swap"
	"github.com/ausocean/panels/tracker/config"
)

// Used to indicate package in logging.
const pkg = "tracker: "

// ErrNoPanels is returned by Lock when no panels are detected in the frame.
var ErrNoPanels = errors.New("no panels detected")

// Tracker holds the state of a tracker instance. All methods other than
// Write are expected to be called from the goroutine running Run.
type Tracker struct {
	// cfg holds the tracker configuration, including the logger.
	cfg config.Config

	// input provides frames.
	input device.FrameSource

	// det finds panels while previewing and cls classifies locked slots.
	det detect.Detector
	cls classify.Classifier

	// out shows each processed frame and supplies operator commands.
	out display.Sink

	// eng holds the locked session; nil while previewing.
	eng *swap.Engine

	// now returns the time a frame is processed at.
	now func() time.Time
}

// New returns a pointer to a new Tracker with the desired configuration,
// showing frames on out, or an error if the input could not be set up.
func New(c config.Config, out display.Sink) (*Tracker, error) {
	t := &Tracker{out: out, now: time.Now}
	err := t.setConfig(c)
	if err != nil {
		return nil, fmt.Errorf("could not set config, failed with error: %w", err)
	}
	err = t.setupPipeline()
	if err != nil {
		return nil, fmt.Errorf("could not set up pipeline: %w", err)
	}
	return t, nil
}

// Config returns a copy of the tracker's current config.
func (t *Tracker) Config() config.Config {
	return t.cfg
}

// Write passes a frame to a manual input.
func (t *Tracker) Write(img image.Image) error {
	m, ok := t.input.(*device.Manual)
	if !ok {
		return errors.New("cannot write to anything but Manual input")
	}
	return m.Write(img)
}

// Run starts the input and processes frames until the operator quits, ctx
// is cancelled or the input ends. A clean end of input or a quit returns nil;
// loss of the input is returned as an error.
func (t *Tracker) Run(ctx context.Context) error {
	err := t.input.Start()
	if err != nil {
		return fmt.Errorf("could not start input: %w", err)
	}
	defer t.close()

	// Stopping the input unblocks a pending Next.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			t.input.Stop()
		case <-stop:
		}
	}()

	t.cfg.Logger.Info(pkg+"running", "input", t.input.Name())
	for {
		if ctx.Err() != nil {
			t.cfg.Logger.Info(pkg + "context done, stopping")
			return nil
		}

		frame, err := t.input.Next()
		switch {
		case err == nil:
		case errors.Is(err, device.ErrBadFrame):
			t.cfg.Logger.Warning(pkg+"skipping bad frame", "error", err)
			continue
		case errors.Is(err, io.EOF):
			t.cfg.Logger.Info(pkg + "end of input")
			return nil
		default:
			return fmt.Errorf("lost input %s: %w", t.input.Name(), err)
		}

		s := t.Process(frame, t.now())
		err = t.out.Show(s)
		if err != nil {
			t.cfg.Logger.Warning(pkg+"could not show frame", "error", err)
		}

		switch c := t.out.Poll(); c {
		case display.Lock:
			err = t.Lock(frame)
			if err != nil {
				t.cfg.Logger.Warning(pkg+"could not lock", "error", err)
			}
		case display.Reset:
			t.Reset()
		case display.Quit:
			t.cfg.Logger.Info(pkg + "quit")
			return nil
		}
	}
}

// close stops the input and releases the detector and classifier.
func (t *Tracker) close() {
	err := t.input.Stop()
	if err != nil {
		t.cfg.Logger.Error(pkg+"could not stop input", "error", err)
	}
	err = t.det.Close()
	if err != nil {
		t.cfg.Logger.Error(pkg+"could not close detector", "error", err)
	}
	err = t.cls.Close()
	if err != nil {
		t.cfg.Logger.Error(pkg+"could not close classifier", "error", err)
	}
}

// Lock detects the panels in frame and freezes them as the grid of a new
// session, capturing each panel's current content as its reference. Any
// previous session is discarded. Locking requires at least one panel.
func (t *Tracker) Lock(frame image.Image) error {
	rects, err := t.det.Detect(frame)
	if err != nil {
		return fmt.Errorf("could not detect panels: %w", err)
	}
	if len(rects) == 0 {
		return ErrNoPanels
	}
	g := grid.New(frame, rects)
	t.eng = swap.New(g, int(t.cfg.ConfirmFrames), t.cfg.SwapCooldown, t.cfg.Logger)
	t.cfg.Logger.Info(pkg+"locked", "difficulty", g.Difficulty().Label(), "panels", g.Len(), "session", t.eng.ID())
	return nil
}

// Reset discards the locked session and returns to preview.
func (t *Tracker) Reset() {
	if t.eng == nil {
		return
	}
	t.cfg.Logger.Info(pkg+"reset to preview mode", "session", t.eng.ID(), "swaps", len(t.eng.Swaps()))
	t.eng = nil
}

// Locked reports whether a grid is locked.
func (t *Tracker) Locked() bool { return t.eng != nil }

// Grid returns the locked grid, or nil while previewing.
func (t *Tracker) Grid() *grid.Grid {
	if t.eng == nil {
		return nil
	}
	return t.eng.Grid()
}

// Difficulty returns the difficulty of the locked grid, or Unknown while
// previewing.
func (t *Tracker) Difficulty() grid.Difficulty {
	if t.eng == nil {
		return grid.Unknown
	}
	return t.eng.Grid().Difficulty()
}

// Session returns the locked session, or nil while previewing.
func (t *Tracker) Session() *swap.Engine { return t.eng }
