/*
DESCRIPTION
  overlay_test.go tests reference blending and compositing.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solid(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestBlend(t *testing.T) {
	live := solid(image.Rect(10, 20, 14, 23), color.RGBA{100, 0, 50, 255})
	ref := solid(image.Rect(0, 0, 4, 3), color.RGBA{200, 100, 0, 255})

	got := Blend(live, ref, DefaultAlpha)
	if got.Bounds() != live.Bounds() {
		t.Fatalf("unexpected bounds: %v", got.Bounds())
	}
	// 100*0.2+200*0.8 = 180, 0*0.2+100*0.8 = 80, 50*0.2+0 = 10.
	want := color.RGBA{180, 80, 10, 255}
	for y := 20; y < 23; y++ {
		for x := 10; x < 14; x++ {
			if c := got.RGBAAt(x, y); c != want {
				t.Fatalf("unexpected colour at (%d,%d): %v", x, y, c)
			}
		}
	}
	if ref.RGBAAt(0, 0) != (color.RGBA{200, 100, 0, 255}) {
		t.Error("reference modified")
	}
	if live.RGBAAt(10, 20) != (color.RGBA{100, 0, 50, 255}) {
		t.Error("live region modified")
	}
}

func TestBlendRounding(t *testing.T) {
	live := solid(image.Rect(0, 0, 1, 1), color.RGBA{1, 3, 0, 255})
	ref := solid(image.Rect(0, 0, 1, 1), color.RGBA{0, 0, 2, 255})
	// 0.5 and 1.5 round away from zero; 1.0 exact.
	got := Blend(live, ref, 0.5).RGBAAt(0, 0)
	if got != (color.RGBA{1, 2, 1, 255}) {
		t.Errorf("unexpected rounding: %v", got)
	}
}

func TestBlendResize(t *testing.T) {
	live := solid(image.Rect(0, 0, 40, 30), color.RGBA{0, 0, 0, 255})
	ref := solid(image.Rect(0, 0, 10, 5), color.RGBA{250, 250, 250, 255})

	got := Blend(live, ref, 0)
	if got.Bounds() != live.Bounds() {
		t.Fatalf("unexpected bounds: %v", got.Bounds())
	}
	if c := got.RGBAAt(20, 15); c.R < 249 || c.G < 249 || c.B < 249 {
		t.Errorf("resized reference not used: %v", c)
	}
	if ref.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Error("reference resized in place")
	}
}

func TestBlendClamp(t *testing.T) {
	live := solid(image.Rect(0, 0, 2, 2), color.RGBA{10, 10, 10, 255})
	ref := solid(image.Rect(0, 0, 2, 2), color.RGBA{90, 90, 90, 255})

	if c := Blend(live, ref, 2).RGBAAt(0, 0); c != live.RGBAAt(0, 0) {
		t.Errorf("alpha above 1 not clamped: %v", c)
	}
	if c := Blend(live, ref, -1).RGBAAt(0, 0); c != ref.RGBAAt(0, 0) {
		t.Errorf("alpha below 0 not clamped: %v", c)
	}
	if got := Blend(image.NewRGBA(image.Rectangle{}), ref, 0.2); !got.Bounds().Empty() {
		t.Errorf("expected empty result for empty live region: %v", got.Bounds())
	}
}

func TestCompose(t *testing.T) {
	frame := solid(image.Rect(0, 0, 20, 20), color.RGBA{0, 0, 0, 255})
	r := image.Rect(15, 15, 25, 25)
	patch := solid(image.Rect(0, 0, 10, 10), color.RGBA{255, 0, 0, 255})

	Compose(frame, r, patch)
	if c := frame.RGBAAt(16, 16); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("patch not drawn: %v", c)
	}
	if c := frame.RGBAAt(14, 14); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel outside patch changed: %v", c)
	}
	if frame.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Error("frame bounds changed")
	}
}
