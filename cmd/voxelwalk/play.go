package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/voxelwalk/pkg/config"
	"github.com/taigrr/voxelwalk/pkg/input"
	"github.com/taigrr/voxelwalk/pkg/render"
)

// bindings maps terminal key names to logical keys.
var bindings = []struct {
	names []string
	key   input.Key
}{
	{[]string{"w"}, input.Forward},
	{[]string{"s"}, input.Back},
	{[]string{"a"}, input.Left},
	{[]string{"d"}, input.Right},
	{[]string{"space"}, input.Jump},
	{[]string{"e"}, input.Up},
	{[]string{"q"}, input.Down},
	{[]string{"left"}, input.LookLeft},
	{[]string{"right"}, input.LookRight},
	{[]string{"up"}, input.LookUp},
	{[]string{"down"}, input.LookDown},
	{[]string{"escape", "ctrl+c"}, input.Quit},
}

type keyMatcher interface {
	MatchString(s ...string) bool
}

func lookupKey(k keyMatcher) (input.Key, bool) {
	for _, b := range bindings {
		if k.MatchString(b.names...) {
			return b.key, true
		}
	}
	return 0, false
}

// screen owns the terminal and the framebuffer sized to it.
type screen struct {
	term     *uv.Terminal
	renderer *render.TerminalRenderer
	fb       *render.Framebuffer
}

func (s *screen) resize(width, height int) {
	s.renderer = render.NewTerminalRenderer(s.term, width, height)
	fbWidth, fbHeight := s.renderer.FramebufferSize()
	s.fb = render.NewFramebuffer(fbWidth, fbHeight)
}

func play(ctx context.Context, cfg config.Config) error {
	w, err := newWorld(cfg)
	if err != nil {
		return err
	}
	sx, sy, sz := w.terrain.Size()
	info.Fprintf(os.Stderr, "Generated %dx%dx%d terrain (%d triangles, seed %d)\n",
		sx, sy, sz, len(w.terrain.Triangles()), cfg.World.Seed)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Any-event mouse tracking in SGR extended mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	scr := &screen{term: term}
	scr.resize(width, height)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Forward terminal events to the frame loop, which owns all state.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	err = loop(ctx, cfg, w, scr, events)
	if err == nil {
		ok.Fprintln(os.Stderr, "Bye!")
	}
	return err
}

func loop(ctx context.Context, cfg config.Config, w *world, scr *screen, events <-chan uv.Event) error {
	keys := input.NewTracker(cfg.View.KeyHold)
	look := input.NewLookSmoother(cfg.View.FPS)

	targetDuration := time.Second / time.Duration(cfg.View.FPS)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()

	drain:
		for {
			select {
			case ev := <-events:
				handleEvent(ev, keys, scr, now)
			default:
				break drain
			}
		}

		state := keys.Snapshot(now)
		if state.Pressed(input.Quit) {
			return nil
		}
		state = mouseLook(state, cfg.View.MouseScale)
		if cfg.View.SmoothLook {
			state = look.Apply(state)
		}

		w.step(state)
		w.draw(scr.fb)

		scr.renderer.Render(scr.fb)
		if err := scr.renderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func handleEvent(ev uv.Event, keys *input.Tracker, scr *screen, now time.Time) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		scr.term.Erase()
		scr.term.Resize(ev.Width, ev.Height)
		scr.resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		if k, found := lookupKey(ev); found {
			keys.Press(k, now)
		}

	case uv.KeyReleaseEvent:
		if k, found := lookupKey(ev); found {
			keys.Release(k)
		}

	case uv.MouseMotionEvent:
		keys.MouseMove(ev.X, ev.Y)
	}
}
