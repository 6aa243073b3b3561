package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orbitfx/internal/config"
	"orbitfx/internal/core"
)

// BuildScene constructs the scene named in cfg from the registry.
func BuildScene(cfg *config.Config) (core.Scene, error) {
	factory, ok := core.Scenes()[cfg.Scene.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", config.ErrUnknownScene, cfg.Scene.Name, strings.Join(core.SceneNames(), ", "))
	}
	return factory(cfg.SceneOptions()), nil
}

// NewClock returns a frame clock capped at the configured max delta.
func NewClock(cfg *config.Config, now func() time.Time) *core.Clock {
	c := core.NewClock(now)
	c.SetMaxDelta(time.Duration(cfg.Scene.MaxDeltaMs) * time.Millisecond)
	return c
}

// Parameters returns the scene tunables when the scene exposes them.
func Parameters(scene core.Scene) (core.ParameterSnapshot, bool) {
	provider, ok := scene.(core.ParameterProvider)
	if !ok {
		return core.ParameterSnapshot{}, false
	}
	return provider.Parameters(), true
}

// rebuild builds the scene for a reloaded config and fits it to the view
// of the scene it replaces.
func rebuild(cfg *config.Config, current core.Scene) (core.Scene, error) {
	next, err := BuildScene(cfg)
	if err != nil {
		return nil, err
	}
	if current != nil {
		size := current.Size()
		next.Resize(size.W, size.H)
	}
	return next, nil
}

// stepMs is the fixed delta used for single-step advances.
func stepMs(tps int) float64 {
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	return 1000 / float64(tps)
}

// frameInterval is the ticker period for tps frames per second.
func frameInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// contextDone reports whether ctx has been cancelled without blocking.
func contextDone(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
