package app

import (
	"encoding/json"
	"fmt"
	"io"

	"orbitfx/internal/core"
)

// Frame is one line of trace output.
type Frame struct {
	Tick    int                 `json:"tick"`
	Elapsed float64             `json:"elapsed_ms"`
	Sprites []core.SpriteRecord `json:"sprites"`
	Dots    []core.DotRecord    `json:"dots,omitempty"`
}

// Trace advances scene ticks times by deltaMs and writes every frame,
// starting with the initial state, as one JSON object per line.
func Trace(w io.Writer, scene core.Scene, ticks int, deltaMs float64, withDots bool) error {
	enc := json.NewEncoder(w)
	elapsed := 0.0
	for tick := 0; tick <= ticks; tick++ {
		if tick > 0 {
			scene.Advance(deltaMs)
			elapsed += core.SanitizeDelta(deltaMs)
		}
		frame := Frame{Tick: tick, Elapsed: elapsed, Sprites: make([]core.SpriteRecord, 0)}
		for rec := range scene.Sprites() {
			frame.Sprites = append(frame.Sprites, rec)
		}
		if withDots {
			for rec := range scene.Dots() {
				frame.Dots = append(frame.Dots, rec)
			}
		}
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("write frame %d: %w", tick, err)
		}
	}
	return nil
}
