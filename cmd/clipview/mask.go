package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/vector"

	"honnef.co/go/clipshape"
)

// Each terminal cell shows two vertically stacked mask pixels, which keeps
// pixels roughly square.
const pixelsPerCell = 2

// frameRect returns the rectangle shapes are fitted to in a mask of w×h
// pixels, leaving a one pixel margin.
func frameRect(w, h int) clipshape.Rect {
	return clipshape.NewRect(1, 1, float64(w-2), float64(h-2))
}

// mirrored flips p horizontally within frame.
func mirrored(p clipshape.BezPath, frame clipshape.Rect) clipshape.BezPath {
	flipped := clipshape.Rect{X0: frame.X1, Y0: frame.Y0, X1: frame.X0, Y1: frame.Y1}
	return p.Transform(clipshape.MapRect(frame, flipped))
}

// rasterize fills p into an alpha mask of w×h pixels using the non-zero
// winding rule.
func rasterize(p clipshape.BezPath, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return dst
	}
	z := vector.NewRasterizer(w, h)
	f := func(v float64) float32 { return float32(v) }
	for el := range p.Elements() {
		switch el.Kind {
		case clipshape.MoveToKind:
			z.MoveTo(f(el.P0.X), f(el.P0.Y))
		case clipshape.LineToKind:
			z.LineTo(f(el.P0.X), f(el.P0.Y))
		case clipshape.QuadToKind:
			z.QuadTo(f(el.P0.X), f(el.P0.Y), f(el.P1.X), f(el.P1.Y))
		case clipshape.CubicToKind:
			z.CubeTo(f(el.P0.X), f(el.P0.Y), f(el.P1.X), f(el.P1.Y), f(el.P2.X), f(el.P2.Y))
		case clipshape.ClosePathKind:
			z.ClosePath()
		}
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})
	return dst
}

// cellRune returns the block character for a cell whose upper and lower
// halves are set as given.
func cellRune(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}

// drawMask paints mask onto the screen, two mask rows per screen row. A
// pixel counts as set once it is at least half covered.
func drawMask(screen tcell.Screen, mask *image.Alpha, style tcell.Style) {
	b := mask.Bounds()
	set := func(x, y int) bool {
		return y < b.Max.Y && mask.AlphaAt(x, y).A >= 0x80
	}
	for row := 0; row*pixelsPerCell < b.Max.Y; row++ {
		y := row * pixelsPerCell
		for x := 0; x < b.Max.X; x++ {
			screen.SetContent(x, row, cellRune(set(x, y), set(x, y+1)), nil, style)
		}
	}
}
