package orbit

import (
	"iter"

	"orbitfx/internal/core"
	"orbitfx/internal/sims/figures"
	"orbitfx/internal/sims/rings"
)

// Config bundles the settings of both simulation units.
type Config struct {
	Figures figures.Config
	Rings   rings.Config
}

// DefaultConfig returns the standard configuration for both units.
func DefaultConfig() Config {
	return Config{Figures: figures.DefaultConfig(), Rings: rings.DefaultConfig()}
}

// FromMap populates both units from one flag-style map. The view size keys
// are shared.
func FromMap(cfg map[string]string) Config {
	c := Config{Figures: figures.FromMap(cfg), Rings: rings.FromMap(cfg)}
	c.Rings.Width = c.Figures.Width
	c.Rings.Height = c.Figures.Height
	return c
}

// Scene is the full effect: a particle field drawn under two dot rings.
type Scene struct {
	field *figures.Field
	rings *rings.Rings
}

// New returns the scene for the given view size using defaults.
func New(w, h float64) *Scene {
	cfg := DefaultConfig()
	cfg.Figures.Width, cfg.Figures.Height = w, h
	cfg.Rings.Width, cfg.Rings.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig builds both units from cfg.
func NewWithConfig(cfg Config) *Scene {
	return &Scene{
		field: figures.NewWithConfig(cfg.Figures),
		rings: rings.NewWithConfig(cfg.Rings),
	}
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "orbit" }

// Size reports the view dimensions.
func (s *Scene) Size() core.Size { return s.field.Size() }

// Field exposes the particle field.
func (s *Scene) Field() *figures.Field { return s.field }

// Rings exposes the dot rings.
func (s *Scene) Rings() *rings.Rings { return s.rings }

// Resize forwards a new view size to both units.
func (s *Scene) Resize(w, h float64) {
	s.field.Resize(w, h)
	s.rings.Resize(w, h)
}

// Reset reseeds the field and re-places the rings.
func (s *Scene) Reset(seed int64) {
	s.field.Reset(seed)
	s.rings.Reset(seed)
}

// Advance moves both units forward by one tick.
func (s *Scene) Advance(deltaMs float64) {
	s.field.Advance(deltaMs)
	s.rings.Advance(deltaMs)
}

// Sprites yields the field's draw records.
func (s *Scene) Sprites() iter.Seq[core.SpriteRecord] { return s.field.Sprites() }

// Dots yields the rings' draw records.
func (s *Scene) Dots() iter.Seq[core.DotRecord] { return s.rings.Dots() }

// Respawned reports the figures renewed by the latest Advance.
func (s *Scene) Respawned() int { return s.field.Respawned() }

// Guides lists the ring paths followed by the figure orbits.
func (s *Scene) Guides() []core.Circle {
	return append(s.rings.Guides(), s.field.Guides()...)
}

// Arcs returns the dashed arc around the rings.
func (s *Scene) Arcs() []core.Arc { return s.rings.Arcs() }

// Parameters merges the tunables of both units.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return s.field.Parameters().Merge(s.rings.Parameters())
}

func init() {
	core.Register("orbit", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
