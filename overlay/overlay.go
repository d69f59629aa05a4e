/*
DESCRIPTION
  overlay.go provides blending of a panel's locked reference image over the
  live view of the panel, so the original content stays visible after the
  panel is lowered or moved.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package overlay provides compositing of reference images onto live frames.
package overlay

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultAlpha is the default weight of the live image in a blend.
const DefaultAlpha = 0.2

// Blend returns live*alpha + ref*(1-alpha), rounded per channel. ref is
// resized bilinearly to the size of live if they differ. The result has the
// bounds of live; neither input is modified. alpha is clamped to [0, 1].
func Blend(live, ref image.Image, alpha float64) *image.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	b := live.Bounds()
	out := toRGBA(live)
	if b.Empty() {
		return out
	}

	r := fit(ref, b)
	for y := 0; y < b.Dy(); y++ {
		o := out.Pix[y*out.Stride : y*out.Stride+4*b.Dx()]
		s := r.Pix[y*r.Stride : y*r.Stride+4*b.Dx()]
		for i := range o {
			o[i] = uint8(math.Round(float64(o[i])*alpha + float64(s[i])*(1-alpha)))
		}
	}
	return out
}

// toRGBA returns a copy of img as an RGBA image with the same bounds.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// fit returns ref as an RGBA image with bounds b, resizing if needed. The
// returned image may share no memory with ref.
func fit(ref image.Image, b image.Rectangle) *image.RGBA {
	rb := ref.Bounds()
	dst := image.NewRGBA(b)
	if rb.Dx() == b.Dx() && rb.Dy() == b.Dy() {
		draw.Draw(dst, b, ref, rb.Min, draw.Src)
		return dst
	}
	if rb.Empty() {
		return dst
	}
	draw.BiLinear.Scale(dst, b, ref, rb, draw.Src, nil)
	return dst
}

// Compose draws blended into dst at r. Only the intersection of r with the
// bounds of dst is drawn.
func Compose(dst draw.Image, r image.Rectangle, blended image.Image) {
	draw.Draw(dst, r, blended, blended.Bounds().Min, draw.Src)
}
