//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the gocv window when Circle-CI builds the tracker. This is needed
  because Circle-CI does not have a copy of Open CV installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

import "errors"

// ErrNoWindow is returned by NewWindow in builds without OpenCV.
var ErrNoWindow = errors.New("display window requires OpenCV, build with -tags withcv or run headless")

// Window is unavailable without OpenCV.
type Window struct{}

// NewWindow returns ErrNoWindow.
func NewWindow(title string) (*Window, error) { return nil, ErrNoWindow }

func (w *Window) Show(s Scene) error { return ErrNoWindow }
func (w *Window) Poll() Command      { return None }
func (w *Window) Close() error       { return nil }
