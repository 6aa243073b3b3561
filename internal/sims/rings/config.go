package rings

import "orbitfx/internal/core"

// minRingGap separates rings configured with equal radii.
const minRingGap = 0.03

// Params holds the ring layout and rotation tunables.
type Params struct {
	DotsPerRing int

	// Radii are fractions of the view width.
	InnerRadius float64
	OuterRadius float64

	// AngularStep is the rotation applied on every tick, in radians.
	AngularStep float64

	// ArcRadius is the radius of the dashed arc around both rings, as a
	// fraction of the view width. Zero hides the arc.
	ArcRadius float64

	// CenterOffsetY shifts the shared center down by a fraction of the view height.
	CenterOffsetY float64
}

// Config controls the ring view size and tunables.
type Config struct {
	Width  float64
	Height float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  480,
		Height: 800,
		Params: Params{
			DotsPerRing:   48,
			InnerRadius:   0.30,
			OuterRadius:   0.33,
			AngularStep:   0.0006,
			ArcRadius:     0.45,
			CenterOffsetY: 0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	opts := core.Options(cfg)
	opts.Float("w", &c.Width)
	opts.Float("h", &c.Height)
	opts.Int("dots_per_ring", &c.Params.DotsPerRing)
	opts.Float("inner_radius", &c.Params.InnerRadius)
	opts.Float("outer_radius", &c.Params.OuterRadius)
	opts.Float("ring_step", &c.Params.AngularStep)
	opts.Float("arc_radius", &c.Params.ArcRadius)
	opts.Float("ring_offset_y", &c.Params.CenterOffsetY)
	c.Normalize()
	return c
}

// Normalize clamps the configuration into a usable shape.
func (c *Config) Normalize() {
	c.Width = core.SanitizeExtent(c.Width)
	c.Height = core.SanitizeExtent(c.Height)
	p := &c.Params
	if p.DotsPerRing < 0 {
		p.DotsPerRing = 0
	}
	if p.InnerRadius < 0 {
		p.InnerRadius = 0
	}
	if p.OuterRadius < 0 {
		p.OuterRadius = 0
	}
	if p.ArcRadius < 0 {
		p.ArcRadius = 0
	}
	if p.OuterRadius < p.InnerRadius {
		p.InnerRadius, p.OuterRadius = p.OuterRadius, p.InnerRadius
	}
	// The rings must not overlap.
	if p.OuterRadius == p.InnerRadius {
		p.OuterRadius = p.InnerRadius + minRingGap
	}
}
