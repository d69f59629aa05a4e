/*
DESCRIPTION
  detect_test.go tests panel detection on synthetic frames.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package detect

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/panels/grid"
	"github.com/ausocean/panels/tracker/config"
)

var (
	dark  = color.RGBA{30, 30, 30, 255}
	white = color.RGBA{240, 240, 240, 255}
)

func newFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(dark), image.Point{}, draw.Src)
	return img
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func newDetector(t *testing.T) *Basic {
	return NewBasic(config.Config{Logger: (*logging.TestLogger)(t)})
}

// panelGrid draws rows x cols 100x70 panels with a small vertical jitter per
// column and returns their rectangles in reading order.
func panelGrid(img draw.Image, rows, cols int) []image.Rectangle {
	var want []image.Rectangle
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := 40 + c*140
			y := 10 + r*100 + (c%3)*3
			rect := image.Rect(x, y, x+100, y+70)
			fill(img, rect, white)
			want = append(want, rect)
		}
	}
	return want
}

func TestBasicGrid(t *testing.T) {
	for _, test := range []struct {
		rows, cols int
		diff       grid.Difficulty
	}{
		{3, 4, grid.Beginner},
		{4, 4, grid.Intermediate},
		{5, 4, grid.Advanced},
	} {
		img := newFrame(640, 640)
		want := panelGrid(img, test.rows, test.cols)

		got, err := newDetector(t).Detect(img)
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("unexpected rectangles for %dx%d\ngot:  %v\nwant: %v", test.rows, test.cols, got, want)
		}
		if d := grid.DifficultyOf(len(got)); d != test.diff {
			t.Errorf("unexpected difficulty for %d panels: %v", len(got), d)
		}
	}
}

func TestBasicAreaBounds(t *testing.T) {
	img := newFrame(600, 300)
	fill(img, image.Rect(10, 10, 90, 60), white)     // 80x50 = 4000, at the lower bound.
	fill(img, image.Rect(110, 10, 191, 60), white)   // 81x50 = 4050.
	fill(img, image.Rect(210, 10, 335, 210), white)  // 125x200 = 25000, at the upper bound.
	fill(img, image.Rect(350, 10, 474, 210), white)  // 124x200 = 24800.
	fill(img, image.Rect(500, 250, 505, 255), white) // Noise.

	got, err := newDetector(t).Detect(img)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []image.Rectangle{
		image.Rect(110, 10, 191, 60),
		image.Rect(350, 10, 474, 210),
	}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rectangles\ngot:  %v\nwant: %v", got, want)
	}
}

func TestBasicExternalOnly(t *testing.T) {
	img := newFrame(400, 300)

	// A bright frame with a panel inside its hole.
	fill(img, image.Rect(20, 20, 170, 170), white)
	fill(img, image.Rect(25, 25, 165, 165), dark)
	fill(img, image.Rect(40, 40, 140, 100), white)

	// A panel touching the frame border.
	fill(img, image.Rect(300, 0, 400, 60), white)

	got, err := newDetector(t).Detect(img)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []image.Rectangle{
		image.Rect(20, 20, 170, 170),
		image.Rect(300, 0, 400, 60),
	}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rectangles\ngot:  %v\nwant: %v", got, want)
	}
}

func TestBasicDiagonalConnectivity(t *testing.T) {
	img := newFrame(400, 200)
	// Two blocks touching only at a corner form one region.
	fill(img, image.Rect(10, 10, 80, 60), white)
	fill(img, image.Rect(80, 60, 150, 110), white)

	got, err := newDetector(t).Detect(img)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []image.Rectangle{image.Rect(10, 10, 150, 110)}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rectangles\ngot:  %v\nwant: %v", got, want)
	}
}

func TestBasicThreshold(t *testing.T) {
	img := newFrame(300, 200)
	fill(img, image.Rect(10, 10, 110, 80), color.RGBA{180, 180, 180, 255})  // Not above threshold.
	fill(img, image.Rect(150, 10, 250, 80), color.RGBA{181, 181, 181, 255}) // Just above.

	got, err := newDetector(t).Detect(img)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []image.Rectangle{image.Rect(150, 10, 250, 80)}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rectangles\ngot:  %v\nwant: %v", got, want)
	}
}

func TestBasicOffsetFrame(t *testing.T) {
	img := newFrame(640, 480)
	fill(img, image.Rect(300, 200, 400, 270), white)
	sub := img.SubImage(image.Rect(200, 100, 640, 480))

	d := newDetector(t)
	got, err := d.Detect(sub)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := []image.Rectangle{image.Rect(300, 200, 400, 270)}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rectangles\ngot:  %v\nwant: %v", got, want)
	}

	// Buffers are reallocated when the frame size changes.
	got, err = d.Detect(newFrame(50, 50))
	if err != nil || len(got) != 0 {
		t.Errorf("unexpected result on empty frame: %v, %v", got, err)
	}
}

func TestNewDefaults(t *testing.T) {
	c := config.Config{Logger: (*logging.TestLogger)(t), Detector: config.DetectorBasic}
	d, ok := New(c).(*Basic)
	if !ok {
		t.Fatal("expected basic detector")
	}
	want := params{thresh: 180, minArea: 4000, maxArea: 25000, rowHeight: 50}
	if d.p != want {
		t.Errorf("unexpected params: %+v", d.p)
	}
}

func BenchmarkBasic(b *testing.B) {
	img := newFrame(1280, 720)
	panelGrid(img, 4, 4)
	d := NewBasic(config.Config{
		BinaryThreshold: 180,
		MinPanelArea:    4000,
		MaxPanelArea:    25000,
		RowHeight:       50,
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Detect(img)
	}
}
