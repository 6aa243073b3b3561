//go:build ebiten

package app

import (
	"context"
	"errors"
	"time"

	"orbitfx/internal/config"
	"orbitfx/internal/config/logger"
	"orbitfx/internal/core"
	"orbitfx/internal/render"
	"orbitfx/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core scene to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	scene   core.Scene
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.Clock
	log     logger.Logger
	reloads <-chan *config.Config

	intrinsic float64
	tps       int
	tickOnce  bool
	seed      int64
	width     int
	height    int
}

// New constructs a Game for the provided scene. The game terminates once ctx
// is cancelled.
func New(ctx context.Context, scene core.Scene, cfg *config.Config, reloads <-chan *config.Config, log logger.Logger) *Game {
	size := scene.Size()
	return &Game{
		ctx:       ctx,
		scene:     scene,
		painter:   render.NewPainter(),
		overlay:   ui.NewOverlay(scene),
		hud:       ui.NewHUD(scene),
		clock:     NewClock(cfg, nil),
		log:       log.WithComponent("GAME"),
		reloads:   reloads,
		intrinsic: render.DefaultSpriteSize / 2,
		tps:       cfg.Window.TPS,
		seed:      cfg.Scene.Seed,
		width:     int(size.W),
		height:    int(size.H),
	}
}

// Reset reinitializes the scene state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
	g.log.Info().Int64("seed", seed).Msg("Scene reset")
}

func (g *Game) reload(cfg *config.Config) {
	next, err := rebuild(cfg, g.scene)
	if err != nil {
		g.log.Warn().Err(err).Msg("Ignoring config reload")
		return
	}
	g.scene = next
	g.overlay.SetScene(next)
	g.hud.SetScene(next)
	g.seed = cfg.Scene.Seed
	g.tps = cfg.Window.TPS
	g.clock.SetMaxDelta(time.Duration(cfg.Scene.MaxDeltaMs) * time.Millisecond)
	ebiten.SetTPS(g.tps)
	g.log.Info().Str("scene", next.Name()).Msg("Config reloaded")
}

// Update handles per-frame logic and advances the scene.
func (g *Game) Update() error {
	if contextDone(g.ctx) {
		g.log.Info().Msg("Context cancelled, closing window")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.clock.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	select {
	case cfg, ok := <-g.reloads:
		if !ok {
			g.reloads = nil
		} else if cfg != nil {
			g.reload(cfg)
		}
	default:
	}

	g.overlay.Update()
	g.hud.Update()

	if !g.clock.Drive(g.scene.Advance) && g.tickOnce {
		g.scene.Advance(stepMs(g.tps))
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current scene state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scene)
	g.overlay.Draw(screen, g.intrinsic)
	g.hud.Draw(screen, ui.StatusLine(g.scene.Name(), g.clock.Paused(), g.clock.Elapsed(), g.seed))
}

// Layout follows the window size and resizes the scene when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
		g.log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("Resized view")
	}
	return g.width, g.height
}

// Run opens a window and drives scene until the window closes, the user
// quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, scene core.Scene, reloads <-chan *config.Config, log logger.Logger) error {
	scene.Resize(float64(cfg.Window.Width), float64(cfg.Window.Height))
	game := New(ctx, scene, cfg, reloads, log)

	ebiten.SetWindowTitle(cfg.Window.Title + " - " + scene.Name())
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
