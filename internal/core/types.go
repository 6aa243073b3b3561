package core

import (
	"iter"
	"math"
	"sort"
)

// Size describes the dimensions of a scene's view in pixels.
type Size struct {
	W float64
	H float64
}

// Empty reports whether the view has no visible area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Source is the random source injected into simulations at reset and respawn
// time. *orbitfx/pkg/core.RNG satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Bool() bool
	Between(lo, hi float64) float64
	IntBetween(lo, hi int) int
}

// SpriteRecord is a per-tick draw record for one floating figure.
type SpriteRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // radians
	Opacity  float64 `json:"opacity"`
	Scale    float64 `json:"scale"`
}

// DotRecord is a per-tick draw record for one ring dot.
type DotRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Ring   int     `json:"ring"`
}

// Circle is an orbit path a scene can expose for debug overlays.
type Circle struct {
	X, Y float64
	R    float64
}

// GuideProvider is implemented by scenes that can describe their orbit paths.
type GuideProvider interface {
	Guides() []Circle
}

// Arc is a dashed circle turning with a scene. The circumference is split
// into Dashes equal slots and each dash fills DashFrac of its slot, the first
// one starting at angle Phase.
type Arc struct {
	X, Y     float64
	R        float64
	Phase    float64
	Dashes   int
	DashFrac float64
}

// DashAngles returns the start and end angle of every dash.
func (a Arc) DashAngles() [][2]float64 {
	if a.Dashes <= 0 || a.R <= 0 || a.DashFrac <= 0 {
		return nil
	}
	frac := min(a.DashFrac, 1)
	slot := 2 * math.Pi / float64(a.Dashes)
	out := make([][2]float64, a.Dashes)
	for i := range out {
		start := a.Phase + float64(i)*slot
		out[i] = [2]float64{start, start + frac*slot}
	}
	return out
}

// ArcProvider is implemented by scenes that draw dashed arcs.
type ArcProvider interface {
	Arcs() []Arc
}

// Scene defines the contract shared by every animation the hosts can drive.
type Scene interface {
	Name() string
	Size() Size
	Resize(w, h float64)
	Reset(seed int64)
	Advance(deltaMs float64)
	Sprites() iter.Seq[SpriteRecord]
	Dots() iter.Seq[DotRecord]
}

// Factory constructs a Scene using an optional flag-style configuration map.
type Factory func(cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// SceneNames returns the registered names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NoSprites is an empty sprite sequence for scenes without figures.
func NoSprites(func(SpriteRecord) bool) {}

// NoDots is an empty dot sequence for scenes without rings.
func NoDots(func(DotRecord) bool) {}
