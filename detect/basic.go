/*
DESCRIPTION
  basic.go provides Basic, a panel detector implemented without OpenCV. Basic
  thresholds the gray frame and bounds the outermost connected bright regions.

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

	"golang.org/x/image/draw"

	"github.com/ausocean/panels/grid"
	"github.com/ausocean/panels/tracker/config"
)

// Basic is a Detector that labels 8-connected bright regions of the binary
// thresholded frame. Regions lying inside a hole of another region are
// ignored, so only outermost regions are candidates.
type Basic struct {
	p params

	gray  *image.Gray
	bin   []bool
	label []int32
	out   []bool // Background reachable from the frame border.
	stack []int
}

// NewBasic returns a pointer to a new Basic detector.
func NewBasic(c config.Config) *Basic {
	return &Basic{p: newParams(c)}
}

// Close implements Detector. Basic holds no external resources.
func (b *Basic) Close() error { return nil }

// region is the bounding box of a connected region and whether it touches the
// outside background.
type region struct {
	minX, minY, maxX, maxY int
	external               bool
}

// Detect implements Detector.
func (b *Basic) Detect(frame image.Image) ([]image.Rectangle, error) {
	bounds := frame.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, nil
	}
	b.threshold(frame)
	b.markOutside(w, h)
	regions := b.regions(w, h)

	var rects []image.Rectangle
	for _, r := range regions {
		if !r.external {
			continue
		}
		rw, rh := r.maxX-r.minX+1, r.maxY-r.minY+1
		if !b.p.accept(rw, rh) {
			continue
		}
		rects = append(rects, image.Rect(r.minX, r.minY, r.maxX+1, r.maxY+1).Add(bounds.Min))
	}
	grid.Order(rects, b.p.rowHeight)
	return rects, nil
}

// threshold converts frame to gray and marks pixels brighter than the
// threshold.
func (b *Basic) threshold(frame image.Image) {
	bounds := frame.Bounds()
	r := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	if b.gray == nil || b.gray.Rect != r {
		b.gray = image.NewGray(r)
		n := r.Dx() * r.Dy()
		b.bin = make([]bool, n)
		b.label = make([]int32, n)
		b.out = make([]bool, n)
	}
	draw.Draw(b.gray, r, frame, bounds.Min, draw.Src)

	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		row := b.gray.Pix[y*b.gray.Stride : y*b.gray.Stride+w]
		for x, v := range row {
			b.bin[y*w+x] = v > b.p.thresh
		}
	}
}

// markOutside flood fills, with 4-connectivity, the background reachable
// from the frame border.
func (b *Basic) markOutside(w, h int) {
	for i := range b.out {
		b.out[i] = false
	}
	b.stack = b.stack[:0]
	seed := func(i int) {
		if !b.bin[i] && !b.out[i] {
			b.out[i] = true
			b.stack = append(b.stack, i)
		}
	}
	for x := 0; x < w; x++ {
		seed(x)
		seed((h-1)*w + x)
	}
	for y := 0; y < h; y++ {
		seed(y * w)
		seed(y*w + w - 1)
	}
	for len(b.stack) > 0 {
		i := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		x, y := i%w, i/w
		if x > 0 {
			seed(i - 1)
		}
		if x < w-1 {
			seed(i + 1)
		}
		if y > 0 {
			seed(i - w)
		}
		if y < h-1 {
			seed(i + w)
		}
	}
}

// regions labels 8-connected foreground regions and returns their bounds.
func (b *Basic) regions(w, h int) []region {
	for i := range b.label {
		b.label[i] = 0
	}
	var regions []region
	for start, fg := range b.bin {
		if !fg || b.label[start] != 0 {
			continue
		}
		id := int32(len(regions) + 1)
		r := region{minX: start % w, minY: start / w, maxX: start % w, maxY: start / w}
		b.label[start] = id
		b.stack = append(b.stack[:0], start)
		for len(b.stack) > 0 {
			i := b.stack[len(b.stack)-1]
			b.stack = b.stack[:len(b.stack)-1]
			x, y := i%w, i/w
			if x < r.minX {
				r.minX = x
			}
			if x > r.maxX {
				r.maxX = x
			}
			if y < r.minY {
				r.minY = y
			}
			if y > r.maxY {
				r.maxY = y
			}
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				r.external = true
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					j := ny*w + nx
					if !b.bin[j] {
						if (dx == 0 || dy == 0) && b.out[j] {
							r.external = true
						}
						continue
					}
					if b.label[j] == 0 {
						b.label[j] = id
						b.stack = append(b.stack, j)
					}
				}
			}
		}
		regions = append(regions, r)
	}
	return regions
}
