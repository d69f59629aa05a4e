//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the gocv capture when Circle-CI builds the tracker. This is needed
  because Circle-CI does not have a copy of Open CV installed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package camera

import "errors"

// ErrNoOpenCV is returned by Start in builds without OpenCV.
var ErrNoOpenCV = errors.New("camera capture requires OpenCV, build with -tags withcv")

func open(id string, width, height uint) (capturer, error) { return nil, ErrNoOpenCV }
