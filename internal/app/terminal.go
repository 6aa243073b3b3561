package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"orbitfx/internal/config"
	"orbitfx/internal/config/logger"
	"orbitfx/internal/core"
	"orbitfx/internal/render/term"
	"orbitfx/internal/ui"
)

// TerminalHost drives a scene on a tcell screen.
type TerminalHost struct {
	screen   tcell.Screen
	scene    core.Scene
	renderer *term.Renderer
	clock    *core.Clock
	log      logger.Logger

	seed       int64
	tps        int
	cols, rows int
	statusBar  bool
}

// NewTerminalHost returns a host for scene using the window and scene
// settings in cfg.
func NewTerminalHost(screen tcell.Screen, scene core.Scene, cfg *config.Config, clock *core.Clock, log logger.Logger) *TerminalHost {
	if clock == nil {
		clock = NewClock(cfg, nil)
	}
	return &TerminalHost{
		screen:    screen,
		scene:     scene,
		renderer:  term.NewRenderer(),
		clock:     clock,
		log:       log.WithComponent("TERM"),
		seed:      cfg.Scene.Seed,
		tps:       cfg.Window.TPS,
		statusBar: true,
	}
}

// Scene returns the scene currently driven.
func (h *TerminalHost) Scene() core.Scene { return h.scene }

// Clock returns the host frame clock.
func (h *TerminalHost) Clock() *core.Clock { return h.clock }

// TPS returns the frame rate the host ticks at.
func (h *TerminalHost) TPS() int { return h.tps }

// Seed returns the seed of the last reset.
func (h *TerminalHost) Seed() int64 { return h.seed }

// Resize fits the scene to a terminal of cols x rows cells.
func (h *TerminalHost) Resize(cols, rows int) {
	if cols == h.cols && rows == h.rows {
		return
	}
	h.cols, h.rows = cols, rows
	w, hh := term.ViewSize(cols, rows)
	h.scene.Resize(w, hh)
	h.log.Debug().Int("cols", cols).Int("rows", rows).Msg("Resized view")
}

// Reset reseeds the scene.
func (h *TerminalHost) Reset(seed int64) {
	h.seed = seed
	h.scene.Reset(seed)
	h.log.Info().Int64("seed", seed).Msg("Scene reset")
}

// Reload swaps in the scene described by cfg. The current scene is kept when
// the new one cannot be built.
func (h *TerminalHost) Reload(cfg *config.Config) {
	next, err := rebuild(cfg, h.scene)
	if err != nil {
		h.log.Warn().Err(err).Msg("Ignoring config reload")
		return
	}
	h.scene = next
	h.seed = cfg.Scene.Seed
	h.tps = cfg.Window.TPS
	h.clock.SetMaxDelta(time.Duration(cfg.Scene.MaxDeltaMs) * time.Millisecond)
	h.log.Info().Str("scene", next.Name()).Msg("Config reloaded")
}

// HandleEvent applies one terminal event and reports whether the host should
// stop.
func (h *TerminalHost) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.Resize(ev.Size())
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	}
	return false
}

// HandleKey applies a key press and reports whether the host should stop.
func (h *TerminalHost) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r {
	case 'q':
		return true
	case ' ':
		paused := h.clock.Toggle()
		h.log.Debug().Bool("paused", paused).Msg("Toggled pause")
	case 'n':
		if h.clock.Paused() {
			h.scene.Advance(stepMs(h.tps))
		}
	case 'r':
		h.Reset(h.seed)
	case 's':
		h.Reset(time.Now().UnixNano())
	case 'i':
		h.statusBar = !h.statusBar
	}
	return false
}

// Frame advances the scene by the clock delta and redraws it.
func (h *TerminalHost) Frame() {
	h.clock.Drive(h.scene.Advance)
	h.renderer.Draw(h.screen, h.scene)
	if h.statusBar && h.rows > 0 {
		line := ui.StatusLine(h.scene.Name(), h.clock.Paused(), h.clock.Elapsed(), h.seed)
		col := 0
		for _, r := range line {
			if col >= h.cols {
				break
			}
			h.screen.SetContent(col, h.rows-1, r, nil, tcell.StyleDefault)
			col++
		}
	}
	h.screen.Show()
}

// Run pumps terminal events, config reloads and frames until the user quits
// or ctx is cancelled. A nil reloads channel disables reloading.
func (h *TerminalHost) Run(ctx context.Context, reloads <-chan *config.Config) error {
	ticker := time.NewTicker(frameInterval(h.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Resize(h.screen.Size())
	h.log.Info().Str("scene", h.scene.Name()).Int("cols", h.cols).Int("rows", h.rows).Msg("Terminal host started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if cfg != nil {
				h.Reload(cfg)
				ticker.Reset(frameInterval(h.tps))
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}
