/*
DESCRIPTION
  camera_test.go tests configuration of the camera FrameSource.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package camera

import (
	"errors"
	"io"
	"testing"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

func TestSet(t *testing.T) {
	c := New((*logging.TestLogger)(t))

	err := c.Set(config.Config{})
	var me device.MultiError
	if !errors.As(err, &me) || len(me) != 3 {
		t.Fatalf("expected three field errors, got %v", err)
	}
	if c.id != defaultID || c.width != defaultWidth || c.height != defaultHeight {
		t.Errorf("fields not defaulted: %q %dx%d", c.id, c.width, c.height)
	}

	err = c.Set(config.Config{CameraID: "rtsp://cam/stream", Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if c.id != "rtsp://cam/stream" || c.width != 640 || c.height != 480 {
		t.Errorf("fields not set: %q %dx%d", c.id, c.width, c.height)
	}
}

func TestNotRunning(t *testing.T) {
	c := New((*logging.TestLogger)(t))
	if c.IsRunning() {
		t.Error("camera running before start")
	}
	if _, err := c.Next(); err != io.EOF {
		t.Errorf("expected io.EOF before start, got %v", err)
	}
	if err := c.Stop(); err != nil {
		t.Errorf("did not expect error stopping idle camera: %v", err)
	}
}

var _ device.FrameSource = (*Camera)(nil)
