package raster

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Bar synthesizes a width x height raster with a vertical bright stripe
// covering columns [x0, x1] (inclusive) set to fg, everything else bg.
// Used to exercise the tracer against a known-straight ridge (spec.md §8
// scenario 5).
func Bar(width, height, x0, x1 int, fg, bg byte) Image {
	pix := make([]byte, width*height)
	for i := range pix {
		pix[i] = bg
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > width-1 {
		x1 = width - 1
	}
	for y := 0; y < height; y++ {
		row := y * width
		for x := x0; x <= x1; x++ {
			pix[row+x] = fg
		}
	}
	img, _ := New(width, height, width, pix)
	return img
}

// Ring synthesizes a width x height raster containing an antialiased
// annulus of the given outer radius r and thickness, centered at (cx, cy),
// at intensity fg against background bg. Used to exercise loop-closure
// (spec.md §8 scenario 6).
//
// The outer and inner discs are each rasterized with a
// golang.org/x/image/vector scanline rasterizer (a many-sided polygon
// approximating a circle) into an alpha mask; the inner mask is subtracted
// from the outer one before compositing onto the background with
// golang.org/x/image/draw.
func Ring(width, height, cx, cy int, r, thickness float64, fg, bg byte) Image {
	outer := discMask(width, height, float64(cx), float64(cy), r)
	inner := discMask(width, height, float64(cx), float64(cy), math.Max(r-thickness, 0))

	ring := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := int(outer.AlphaAt(x, y).A) - int(inner.AlphaAt(x, y).A)
			if a < 0 {
				a = 0
			}
			ring.SetAlpha(x, y, color.Alpha{A: uint8(a)})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: bg}), image.Point{}, stddraw.Src)
	xdraw.DrawMask(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: fg}), image.Point{}, ring, image.Point{}, xdraw.Over)

	pix := make([]byte, width*height)
	copy(pix, dst.Pix)
	img, _ := New(width, height, width, pix)
	return img
}

func discMask(width, height int, cx, cy, r float64) *image.Alpha {
	rz := vector.NewRasterizer(width, height)
	const segments = 64
	rz.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		rz.LineTo(float32(cx+r*math.Cos(theta)), float32(cy+r*math.Sin(theta)))
	}
	rz.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
