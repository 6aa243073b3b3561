package figures

import (
	"iter"
	"math"

	"github.com/charmbracelet/harmonica"

	"orbitfx/internal/core"
	rng "orbitfx/pkg/core"
)

// Figure is a single drifting sprite on a circular orbit.
type Figure struct {
	X, Y             float64
	CenterX, CenterY float64
	Theta            float64
	Speed            float64
	Scale            float64
	Alpha            float64
	Lifetime         int
	Inverted         bool

	// Renewed marks a figure respawned during the latest Advance.
	Renewed bool
	// Fade multiplies Alpha while a respawned figure eases in.
	Fade    float64
	fadeVel float64
}

// Field owns a fixed batch of figures and advances them every tick.
type Field struct {
	cfg Config

	w, h    float64
	figures []Figure
	src     core.Source

	// decayCarry accumulates fractional ticks when lifetime decay is time scaled.
	decayCarry float64
	respawned  int
}

// New returns a field for the given view size using defaults.
func New(w, h float64) *Field {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a field populated from the config seed.
func NewWithConfig(cfg Config) *Field {
	cfg.Normalize()
	f := &Field{cfg: cfg, w: cfg.Width, h: cfg.Height}
	f.Reset(0)
	return f
}

// Name returns the scene identifier.
func (f *Field) Name() string { return "figures" }

// Size reports the view dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.w, H: f.h} }

// Config returns the active configuration.
func (f *Field) Config() Config { return f.cfg }

// Len reports the number of figures in the field.
func (f *Field) Len() int { return len(f.figures) }

// Figures returns a copy of the current figure state.
func (f *Field) Figures() []Figure {
	return append([]Figure(nil), f.figures...)
}

// Reset repopulates the field using a PCG source seeded with seed, or with
// the configured seed when seed is zero.
func (f *Field) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.Initialize(rng.NewRNG(effective))
}

// Initialize repopulates the field drawing every random value from src. The
// source is kept for later respawns.
func (f *Field) Initialize(src core.Source) {
	f.src = src
	f.decayCarry = 0
	f.respawned = 0
	n := f.cfg.Params.Count
	if cap(f.figures) < n {
		f.figures = make([]Figure, n)
	}
	f.figures = f.figures[:n]
	for i := range f.figures {
		f.figures[i] = Figure{}
		f.spawn(&f.figures[i])
	}
}

// Resize records a new view size and repopulates the field from the current
// random stream.
func (f *Field) Resize(w, h float64) {
	f.w = core.SanitizeExtent(w)
	f.h = core.SanitizeExtent(h)
	f.cfg.Width, f.cfg.Height = f.w, f.h
	if f.src == nil {
		f.Reset(0)
		return
	}
	f.Initialize(f.src)
}

// Advance moves every figure along its orbit by the angle covered in deltaMs
// and respawns figures whose lifetime ran out. Lifetime decays by one per call
// unless TimeScaledLifetime is set, so a figure spawned with lifetime L is
// renewed on its Lth advance: L-1 advances show it, and the Lth replaces it.
func (f *Field) Advance(deltaMs float64) {
	deltaMs = core.SanitizeDelta(deltaMs)
	p := f.cfg.Params
	radius := f.radius()
	seconds := deltaMs / 1000
	decay := f.lifetimeDecay(deltaMs)

	f.respawned = 0

	var spring harmonica.Spring
	if p.FadeIn {
		spring = harmonica.NewSpring(seconds, p.FadeFrequency, 1.0)
	}

	for i := range f.figures {
		fig := &f.figures[i]
		fig.Renewed = false

		step := fig.Speed * seconds * p.AngularStepScale
		if fig.Inverted {
			fig.Theta -= step
		} else {
			fig.Theta += step
		}
		fig.X, fig.Y = core.OrbitPoint(fig.CenterX, fig.CenterY, radius, fig.Theta)

		if p.FadeIn && fig.Fade < 1 {
			fig.Fade, fig.fadeVel = spring.Update(fig.Fade, fig.fadeVel, 1)
			fig.Fade = clamp01(fig.Fade)
		}

		fig.Lifetime -= decay
		if fig.Lifetime <= 0 {
			fig.Lifetime = 0
			f.spawn(fig)
			fig.Renewed = true
			f.respawned++
		}
	}
}

// Respawned reports how many figures were renewed by the latest Advance.
func (f *Field) Respawned() int { return f.respawned }

// Sprites yields a draw record for every visible figure. The sequence reads
// the current state and can be iterated any number of times.
func (f *Field) Sprites() iter.Seq[core.SpriteRecord] {
	return func(yield func(core.SpriteRecord) bool) {
		for i := range f.figures {
			fig := &f.figures[i]
			if fig.Renewed && f.cfg.Params.HideRespawned {
				continue
			}
			if !yield(fig.record()) {
				return
			}
		}
	}
}

// Dots is empty for a bare particle field.
func (f *Field) Dots() iter.Seq[core.DotRecord] { return core.NoDots }

// Guides returns the orbit path of every figure.
func (f *Field) Guides() []core.Circle {
	out := make([]core.Circle, 0, len(f.figures))
	r := f.radius()
	for _, fig := range f.figures {
		out = append(out, core.Circle{X: fig.CenterX, Y: fig.CenterY, R: r})
	}
	return out
}

func (f *Field) radius() float64 {
	return f.cfg.Params.RadiusFactor * f.w
}

func (f *Field) lifetimeDecay(deltaMs float64) int {
	p := f.cfg.Params
	if !p.TimeScaledLifetime {
		return 1
	}
	f.decayCarry += deltaMs / p.TickMs
	whole := math.Floor(f.decayCarry)
	f.decayCarry -= whole
	return int(whole)
}

// spawn draws fresh visual and motion parameters for fig in place.
func (f *Field) spawn(fig *Figure) {
	p := f.cfg.Params
	src := f.src

	fig.Scale = p.ScaleMin + p.ScaleMax*src.Float64()
	// Bigger figures are brighter; the random part keeps them from looking uniform.
	fig.Alpha = clamp01(p.AlphaScaleWeight*fig.Scale + p.AlphaRandomWeight*src.Float64())
	fig.Speed = p.BaseSpeed * fig.Alpha * fig.Scale
	fig.Theta = 0

	fig.CenterX = f.w * src.Between(p.CenterXMin, p.CenterXMax)
	fig.CenterY = f.h * src.Between(p.CenterYMin, p.CenterYMax)
	fig.Lifetime = src.IntBetween(p.LifetimeMin, p.LifetimeMax)

	inverted := src.Bool()
	fig.Inverted = p.Bidirectional && inverted

	fig.X, fig.Y = core.OrbitPoint(fig.CenterX, fig.CenterY, f.radius(), fig.Theta)

	fig.fadeVel = 0
	if p.FadeIn {
		fig.Fade = 0
	} else {
		fig.Fade = 1
	}
}

func (fig *Figure) record() core.SpriteRecord {
	return core.SpriteRecord{
		X:        fig.X,
		Y:        fig.Y,
		Rotation: 2 * math.Pi * fig.Theta * fig.Scale,
		Opacity:  clamp01(fig.Alpha * fig.Fade),
		Scale:    fig.Scale,
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	core.Register("figures", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
