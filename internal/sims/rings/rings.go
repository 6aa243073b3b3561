package rings

import (
	"iter"
	"math"

	"orbitfx/internal/core"
)

const (
	// Inner is the index of the smaller ring.
	Inner = 0
	// Outer is the index of the larger ring.
	Outer = 1

	// The arc is drawn as long dashes with short gaps.
	arcDashes   = 6
	arcDashFrac = 240.0 / 340.0
)

// Dot is a point on one of the rotating rings. Radius never changes after
// placement.
type Dot struct {
	X, Y   float64
	Radius float64
	Theta  float64
}

// Rings owns two concentric dot rings sharing a center, plus an optional
// dashed arc turning with them.
type Rings struct {
	cfg      Config
	w, h     float64
	rings    [2][]Dot
	rotation float64
}

// New returns rings for the given view size using defaults.
func New(w, h float64) *Rings {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns rings laid out from the provided options.
func NewWithConfig(cfg Config) *Rings {
	cfg.Normalize()
	r := &Rings{cfg: cfg, w: cfg.Width, h: cfg.Height}
	r.layout()
	return r
}

// Name returns the scene identifier.
func (r *Rings) Name() string { return "rings" }

// Size reports the view dimensions.
func (r *Rings) Size() core.Size { return core.Size{W: r.w, H: r.h} }

// Config returns the active configuration.
func (r *Rings) Config() Config { return r.cfg }

// Center returns the shared center of both rings.
func (r *Rings) Center() (float64, float64) {
	return r.w / 2, r.h/2 + r.cfg.Params.CenterOffsetY*r.h
}

// Ring returns a copy of the dots of ring i (Inner or Outer).
func (r *Rings) Ring(i int) []Dot {
	if i < 0 || i >= len(r.rings) {
		return nil
	}
	return append([]Dot(nil), r.rings[i]...)
}

// Reset places the dots back at their starting angles. Rings draw no random
// values, so the seed is ignored.
func (r *Rings) Reset(int64) { r.layout() }

// Resize records a new view size and lays the rings out again.
func (r *Rings) Resize(w, h float64) {
	r.w = core.SanitizeExtent(w)
	r.h = core.SanitizeExtent(h)
	r.cfg.Width, r.cfg.Height = r.w, r.h
	r.layout()
}

// Advance rotates every dot by the configured step. The step is per tick and
// does not depend on deltaMs.
func (r *Rings) Advance(float64) {
	cx, cy := r.Center()
	step := r.cfg.Params.AngularStep
	r.rotation -= step
	for ring := range r.rings {
		dots := r.rings[ring]
		for i := range dots {
			d := &dots[i]
			d.Theta -= step
			d.X, d.Y = core.OrbitPoint(cx, cy, d.Radius, d.Theta)
		}
	}
}

// Dots yields a draw record for every dot, inner ring first.
func (r *Rings) Dots() iter.Seq[core.DotRecord] {
	return func(yield func(core.DotRecord) bool) {
		for ring := range r.rings {
			for _, d := range r.rings[ring] {
				if !yield(core.DotRecord{X: d.X, Y: d.Y, Radius: d.Radius, Ring: ring}) {
					return
				}
			}
		}
	}
}

// Sprites is empty for bare rings.
func (r *Rings) Sprites() iter.Seq[core.SpriteRecord] { return core.NoSprites }

// Guides returns the two ring paths.
func (r *Rings) Guides() []core.Circle {
	cx, cy := r.Center()
	radii := r.radii()
	return []core.Circle{{X: cx, Y: cy, R: radii[Inner]}, {X: cx, Y: cy, R: radii[Outer]}}
}

// Arcs returns the dashed arc, rotated by the same angle as the ring dots.
// It is empty when ArcRadius is zero.
func (r *Rings) Arcs() []core.Arc {
	radius := r.cfg.Params.ArcRadius * r.w
	if radius <= 0 {
		return nil
	}
	cx, cy := r.Center()
	return []core.Arc{{X: cx, Y: cy, R: radius, Phase: r.rotation, Dashes: arcDashes, DashFrac: arcDashFrac}}
}

func (r *Rings) radii() [2]float64 {
	p := r.cfg.Params
	return [2]float64{p.InnerRadius * r.w, p.OuterRadius * r.w}
}

func (r *Rings) layout() {
	p := r.cfg.Params
	radii := r.radii()
	cx, cy := r.Center()
	n := p.DotsPerRing
	r.rotation = 0
	spacing := 0.0
	if n > 0 {
		spacing = 2 * math.Pi / float64(n)
	}
	for ring := range r.rings {
		if cap(r.rings[ring]) < n {
			r.rings[ring] = make([]Dot, n)
		}
		dots := r.rings[ring][:n]
		for i := range dots {
			theta := float64(i) * spacing
			x, y := core.OrbitPoint(cx, cy, radii[ring], theta)
			dots[i] = Dot{X: x, Y: y, Radius: radii[ring], Theta: theta}
		}
		r.rings[ring] = dots
	}
}

func init() {
	core.Register("rings", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
