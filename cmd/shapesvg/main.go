// Command shapesvg writes an SVG contact sheet showing every shape kind,
// one row per kind and one column per animation frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"honnef.co/go/clipshape"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "shapesvg: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fset := flag.NewFlagSet("shapesvg", flag.ContinueOnError)
	out := fset.String("o", "", "Output file (default stdout)")
	frames := fset.Int("frames", 1, "Number of animation frames per shape")
	step := fset.Duration("step", 200*time.Millisecond, "Time between frames")
	cell := fset.Float64("cell", 120, "Size of each cell in pixels")
	seed := fset.Uint64("seed", 1, "Seed for cloud and blob control points")
	verbose := fset.Bool("v", false, "Enable verbose logging")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", *frames)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := sheetOptions{
		factory: clipshape.Factory{Rand: rand.New(rand.NewPCG(*seed, *seed))},
		frames:  *frames,
		step:    step.Seconds(),
		cell:    *cell,
		log:     log,
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := writeSheet(w, opts); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}
