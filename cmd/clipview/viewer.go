package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"honnef.co/go/clipshape"
)

// viewer holds the state of the overlay: the selected shape, its animation,
// and the time accumulator advanced by the ticker.
type viewer struct {
	factory   clipshape.Factory
	kind      clipshape.Kind
	shape     clipshape.Shape
	anim      clipshape.Animation
	t         float64
	animating bool
	mirror    bool
	log       *slog.Logger
}

func newViewer(s settings, cfg Config, log *slog.Logger) (*viewer, error) {
	v := &viewer{
		factory:   s.factory,
		animating: cfg.Animate,
		mirror:    cfg.Mirror,
		log:       log,
	}
	if err := v.selectKind(s.kind); err != nil {
		return nil, err
	}
	return v, nil
}

// selectKind replaces the current shape with a fresh shape of kind k. The
// time accumulator keeps running.
func (v *viewer) selectKind(k clipshape.Kind) error {
	s, err := v.factory.New(k)
	if err != nil {
		return fmt.Errorf("select %s: %w", k, err)
	}
	v.kind = k
	v.shape = s
	v.anim = clipshape.Animate(s)
	v.log.Debug("selected shape", "kind", k)
	return nil
}

// next selects the kind after the current one, skipping kinds that can't be
// constructed.
func (v *viewer) next() {
	k := v.kind
	for range clipshape.Kinds() {
		k = k.Next()
		if err := v.selectKind(k); err != nil {
			v.log.Info("skipping shape", "kind", k, "err", err)
			continue
		}
		return
	}
}

func (v *viewer) tick(d time.Duration) {
	if v.animating {
		v.t += d.Seconds()
	}
}

// current returns the shape to show now.
func (v *viewer) current() clipshape.Shape {
	if v.animating {
		return v.anim.At(v.t)
	}
	return v.shape
}

// handleKey applies a key press and reports whether the viewer should quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	r := ev.Rune()
	switch r {
	case 'q':
		return true
	case ' ':
		v.animating = !v.animating
		v.log.Debug("toggled animation", "animating", v.animating)
	case 'f':
		v.mirror = !v.mirror
	case 'n':
		v.next()
	default:
		if k, ok := clipshape.KindForShortcut(r); ok {
			if err := v.selectKind(k); err != nil {
				v.log.Info("can't select shape", "kind", k, "err", err)
			}
		}
	}
	return false
}

// status returns the text of the status line.
func (v *viewer) status() string {
	state := "paused"
	if v.animating {
		state = fmt.Sprintf("t=%.1f", v.t)
	}
	mirror := ""
	if v.mirror {
		mirror = " mirrored"
	}
	return fmt.Sprintf("%s (%c) %s%s · n next · space play/pause · f mirror · q quit",
		v.kind, v.kind.Shortcut(), state, mirror)
}

// drawText writes s at row y, truncated to the screen width.
func drawText(screen tcell.Screen, y int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	x := 0
	for _, r := range runewidth.Truncate(s, cols, "…") {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// render rasterises the current shape at the screen's size and draws it,
// with a status line on the last row.
func (v *viewer) render(screen tcell.Screen, style tcell.Style) {
	cols, rows := screen.Size()
	w, h := cols, max(rows-1, 0)*pixelsPerCell
	frame := frameRect(w, h)
	p := v.current().Path(frame)
	if v.mirror {
		p = mirrored(p, frame)
	}
	screen.Clear()
	drawMask(screen, rasterize(p, w, h), style)
	if rows > 0 {
		drawText(screen, rows-1, v.status(), style.Reverse(true))
	}
	screen.Show()
}

// run drives the viewer until ctx is cancelled or the user quits. Events
// are polled on a separate goroutine and handed to the render loop.
func (v *viewer) run(ctx context.Context, screen tcell.Screen, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// The screen has been finalised.
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	v.render(screen, style)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return
				}
			}
			v.render(screen, style)
		case <-ticker.C:
			v.tick(interval)
			if v.animating {
				v.render(screen, style)
			}
		}
	}
}
