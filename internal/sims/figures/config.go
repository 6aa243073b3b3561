package figures

import (
	"math"

	"orbitfx/internal/core"
)

// Params holds the tunables of the particle field.
type Params struct {
	Count int

	ScaleMin float64
	ScaleMax float64

	AlphaScaleWeight  float64
	AlphaRandomWeight float64

	BaseSpeed        float64
	AngularStepScale float64
	RadiusFactor     float64

	LifetimeMin int
	LifetimeMax int

	CenterXMin float64
	CenterXMax float64
	CenterYMin float64
	CenterYMax float64

	Bidirectional      bool
	TimeScaledLifetime bool
	TickMs             float64

	HideRespawned bool
	FadeIn        bool
	FadeFrequency float64
}

// Config controls the particle field view size, seed and tunables.
type Config struct {
	Width  float64
	Height float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  480,
		Height: 800,
		Seed:   1500,
		Params: Params{
			Count:             15,
			ScaleMin:          0.1,
			ScaleMax:          0.8,
			AlphaScaleWeight:  0.4,
			AlphaRandomWeight: 0.5,
			BaseSpeed:         0.06,
			AngularStepScale:  math.Pi / 2,
			RadiusFactor:      0.5,
			LifetimeMin:       1000,
			LifetimeMax:       2000,
			CenterXMin:        0,
			CenterXMax:        1,
			CenterYMin:        0.1,
			CenterYMax:        0.9,
			Bidirectional:     true,
			TickMs:            1000.0 / 60,
			HideRespawned:     true,
			FadeFrequency:     6,
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
	p := &c.Params

	opts.Float("w", &c.Width)
	opts.Float("h", &c.Height)
	opts.Int64("seed", &c.Seed)

	opts.Int("count", &p.Count)
	opts.Float("scale_min", &p.ScaleMin)
	opts.Float("scale_max", &p.ScaleMax)
	opts.Float("alpha_scale_weight", &p.AlphaScaleWeight)
	opts.Float("alpha_random_weight", &p.AlphaRandomWeight)
	opts.Float("base_speed", &p.BaseSpeed)
	opts.Float("angular_step_scale", &p.AngularStepScale)
	opts.Float("radius_factor", &p.RadiusFactor)
	opts.Int("lifetime_min", &p.LifetimeMin)
	opts.Int("lifetime_max", &p.LifetimeMax)
	opts.Float("center_x_min", &p.CenterXMin)
	opts.Float("center_x_max", &p.CenterXMax)
	opts.Float("center_y_min", &p.CenterYMin)
	opts.Float("center_y_max", &p.CenterYMax)
	opts.Bool("bidirectional", &p.Bidirectional)
	opts.Bool("time_scaled_lifetime", &p.TimeScaledLifetime)
	opts.Float("tick_ms", &p.TickMs)
	opts.Bool("hide_respawned", &p.HideRespawned)
	opts.Bool("fade_in", &p.FadeIn)
	opts.Float("fade_frequency", &p.FadeFrequency)

	c.Normalize()
	return c
}

// Normalize clamps the configuration into a usable shape.
func (c *Config) Normalize() {
	c.Width = core.SanitizeExtent(c.Width)
	c.Height = core.SanitizeExtent(c.Height)

	p := &c.Params
	if p.Count < 0 {
		p.Count = 0
	}
	if p.ScaleMin < 0 {
		p.ScaleMin = 0
	}
	if p.ScaleMax < 0 {
		p.ScaleMax = 0
	}
	if p.AlphaScaleWeight < 0 {
		p.AlphaScaleWeight = 0
	}
	if p.AlphaRandomWeight < 0 {
		p.AlphaRandomWeight = 0
	}
	if p.RadiusFactor < 0 {
		p.RadiusFactor = 0
	}
	if p.LifetimeMin < 0 {
		p.LifetimeMin = 0
	}
	if p.LifetimeMax < p.LifetimeMin {
		p.LifetimeMax = p.LifetimeMin
	}
	if p.CenterXMax < p.CenterXMin {
		p.CenterXMax = p.CenterXMin
	}
	if p.CenterYMax < p.CenterYMin {
		p.CenterYMax = p.CenterYMin
	}
	if p.TickMs <= 0 {
		p.TickMs = 1000.0 / 60
	}
	if p.FadeFrequency < 0 {
		p.FadeFrequency = 0
	}
}
