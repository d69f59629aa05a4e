/*
DESCRIPTION
  file_test.go tests the file FrameSource.

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package file

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/panels/device"
	"github.com/ausocean/panels/tracker/config"
)

// writeMJPEG writes n solid gray frames of increasing brightness, followed by
// tail, to a temporary file and returns its path.
func writeMJPEG(t *testing.T, n int, tail []byte) string {
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		img := image.NewGray(image.Rect(0, 0, 16, 16))
		for j := range img.Pix {
			img.Pix[j] = uint8(40 * (i + 1))
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
			t.Fatalf("could not encode frame: %v", err)
		}
	}
	buf.Write(tail)
	path := filepath.Join(t.TempDir(), "panels.mjpeg")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("could not write file: %v", err)
	}
	return path
}

func gray(img image.Image) uint8 {
	return color.GrayModel.Convert(img.At(8, 8)).(color.Gray).Y
}

func TestIsRunning(t *testing.T) {
	const dur = 50 * time.Millisecond
	path := writeMJPEG(t, 1, nil)

	d := New((*logging.TestLogger)(t))

	err := d.Set(config.Config{
		InputPath: path,
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

	if d.IsRunning() {
		t.Error("device is running, when it should not be")
	}
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after stop, got %v", err)
	}
}

func TestNext(t *testing.T) {
	path := writeMJPEG(t, 3, []byte{0xff, 0xd8, 0x00, 0x01, 0xff, 0xd9})
	d := NewWith((*logging.TestLogger)(t), path, false, 0)
	if err := d.Start(); err != nil {
		t.Fatalf("could not start device: %v", err)
	}
	defer d.Stop()

	var levels []uint8
	for i := 0; i < 3; i++ {
		img, err := d.Next()
		if err != nil {
			t.Fatalf("unexpected error for frame %d: %v", i, err)
		}
		levels = append(levels, gray(img))
	}
	if !(levels[0] < levels[1] && levels[1] < levels[2]) {
		t.Errorf("frames out of order: %v", levels)
	}

	// The trailing garbage frame does not decode.
	if _, err := d.Next(); !errors.Is(err, device.ErrBadFrame) {
		t.Errorf("expected bad frame, got %v", err)
	}
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("expected io.EOF at end of file, got %v", err)
	}
}

func TestLoop(t *testing.T) {
	path := writeMJPEG(t, 2, nil)
	d := NewWith((*logging.TestLogger)(t), path, true, 100)
	if err := d.Start(); err != nil {
		t.Fatalf("could not start device: %v", err)
	}
	defer d.Stop()

	start := time.Now()
	var levels []uint8
	for i := 0; i < 5; i++ {
		img, err := d.Next()
		if err != nil {
			t.Fatalf("unexpected error for frame %d: %v", i, err)
		}
		levels = append(levels, gray(img))
	}
	if levels[0] != levels[2] || levels[1] != levels[3] || levels[0] != levels[4] {
		t.Errorf("file did not loop: %v", levels)
	}
	if time.Since(start) < 40*time.Millisecond {
		t.Errorf("frames not paced, took %v", time.Since(start))
	}
}

func TestSetNoPath(t *testing.T) {
	d := New((*logging.TestLogger)(t))
	if err := d.Set(config.Config{}); err == nil {
		t.Error("expected error for empty input path")
	}
	if err := d.Start(); err == nil {
		t.Error("expected error starting unset device")
	}
}

var _ device.FrameSource = (*File)(nil)
