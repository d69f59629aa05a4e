/*
DESCRIPTION
  webcam_test.go tests the webcam FrameSource.

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package webcam

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

func TestSet(t *testing.T) {
	l := logging.New(logging.Debug, &bytes.Buffer{}, true) // Discard logs.
	d := New(l)

	err := d.Set(config.Config{Logger: l})
	var me device.MultiError
	if !errors.As(err, &me) || len(me) != 3 {
		t.Fatalf("expected three field errors, got %v", err)
	}

	want := []string{
		"-loglevel", "error",
		"-f", "v4l2",
		"-video_size", "1280x720",
		"-i", "/dev/video0",
		"-f", "mjpeg",
		"-q:v", "3",
		"-",
	}
	if got := d.args(); !cmp.Equal(got, want) {
		t.Errorf("unexpected ffmpeg args\ngot:  %v\nwant: %v", got, want)
	}

	err = d.Set(config.Config{Logger: l, InputPath: "/dev/video2", Width: 640, Height: 480})
	if err != nil {
		t.Errorf("did not expect error: %v", err)
	}
}

func TestIsRunning(t *testing.T) {
	const dur = 250 * time.Millisecond

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}
	if _, err := os.Stat(defaultInputPath); err != nil {
		t.Skip("no webcam available")
	}

	l := logging.New(logging.Debug, &bytes.Buffer{}, true) // Discard logs.
	d := New(l)

	err := d.Set(config.Config{
		Logger:    l,
		InputPath: defaultInputPath,
		Width:     defaultWidth,
		Height:    defaultHeight,
	})
	if err != nil {
		t.Skipf("could not set device: %v", err)
	}

	err = d.Start()
	if err != nil {
		t.Fatalf("could not start device %v", err)
	}

	time.Sleep(dur)

	if !d.IsRunning() {
		t.Error("device isn't running, when it should be")
	}

	err = d.Stop()
	if err != nil {
		t.Error(err.Error())
	}

	time.Sleep(dur)

	if d.IsRunning() {
		t.Error("device is running, when it should not be")
	}
}
