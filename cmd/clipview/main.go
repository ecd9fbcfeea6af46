// Command clipview previews clip shapes in the terminal.
//
// The selected shape is rasterised into an alpha mask the size of the
// terminal and drawn with block characters. Keys:
//
//	c r s e h t d b x  select circle, rectangle, capsule, ellipse, polygon,
//	                   heart, cloud, blob or external outline
//	n                  next shape
//	space              start or stop the animation
//	f                  mirror horizontally
//	q, Esc             quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "clipview: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("clipview", flag.ContinueOnError)
	configPath := fset.String("config", "", "Path to a JSON config file")
	tick := fset.String("tick", "", "Interval between animation frames (e.g. 200ms)")
	kind := fset.String("shape", "", "Initial shape")
	animate := fset.Bool("animate", true, "Start with the animation running")
	mirror := fset.Bool("mirror", false, "Mirror the shape horizontally")
	sides := fset.Int("sides", 0, "Number of polygon sides")
	logPath := fset.String("log", "", "Write debug logs to this file")
	verbose := fset.Bool("v", false, "Enable verbose logging")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	// Flags given on the command line override the config file.
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.Tick = *tick
		case "shape":
			cfg.Kind = *kind
		case "animate":
			cfg.Animate = *animate
		case "mirror":
			cfg.Mirror = *mirror
		case "sides":
			cfg.PolygonSides = *sides
		}
	})
	s, err := cfg.validate()
	if err != nil {
		return err
	}

	var logw io.Writer
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logw = f
	} else if *verbose {
		logw = os.Stderr
	}
	log := newLogger(logw, *verbose || *logPath != "")

	v, err := newViewer(s, cfg, log)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("standard input is not a terminal")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("starting", "shape", s.kind, "tick", s.tick)
	v.run(ctx, screen, s.tick)
	return nil
}
