package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"honnef.co/go/clipshape"
)

const labelWidth = 100

type sheetOptions struct {
	factory clipshape.Factory
	frames  int
	// step is the time between frames, in seconds.
	step float64
	cell float64
	log  *slog.Logger
}

// writeSheet writes the contact sheet as a standalone SVG document. Kinds
// that can't be constructed are left out.
func writeSheet(w io.Writer, opts sheetOptions) error {
	type row struct {
		kind clipshape.Kind
		anim clipshape.Animation
	}
	var rows []row
	for _, k := range clipshape.Kinds() {
		a, err := opts.factory.Animate(k)
		if err != nil {
			opts.log.Warn("skipping shape", "kind", k, "err", err)
			continue
		}
		rows = append(rows, row{k, a})
	}

	bw := bufio.NewWriter(w)
	width := labelWidth + float64(opts.frames)*opts.cell
	height := float64(len(rows)) * opts.cell
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	svgOpts := clipshape.SVGOptions{MaxPrecision: 3}
	for i, r := range rows {
		y := float64(i) * opts.cell
		fmt.Fprintf(bw, `<text x="8" y="%g" font-family="sans-serif" font-size="14">%s (%c)</text>`+"\n",
			y+opts.cell/2, r.kind, r.kind.Shortcut())
		for j := range opts.frames {
			t := float64(j) * opts.step
			frame := clipshape.NewRect(labelWidth+float64(j)*opts.cell, y, opts.cell, opts.cell).Inset(opts.cell / 10)
			p := r.anim.At(t).Path(frame)
			opts.log.Debug("frame", "kind", r.kind, "t", t, "elements", len(p))
			fmt.Fprint(bw, `<path fill="#4a90d9" stroke="#1c3d5a" d="`)
			if err := p.WriteSVG(bw, svgOpts); err != nil {
				return err
			}
			fmt.Fprint(bw, `"/>`+"\n")
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
