package clipshape

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [BezPath.SVG] and
// [BezPath.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG returns the path as SVG path data, suitable for the d attribute of a
// path element.
func (p BezPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as SVG path data to w.
//
// Coordinates are always absolute; no attempt is made to shorten the output.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}
	for i, el := range p {
		if i > 0 {
			writef(" ")
		}
		switch el.Kind {
		case MoveToKind:
			writef("M%s", pt(el.P0))
		case LineToKind:
			writef("L%s", pt(el.P0))
		case QuadToKind:
			writef("Q%s %s", pt(el.P0), pt(el.P1))
		case CubicToKind:
			writef("C%s %s %s", pt(el.P0), pt(el.P1), pt(el.P2))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
