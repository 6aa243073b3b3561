package rings

import "orbitfx/internal/core"

// Parameters describes the active ring configuration.
func (r *Rings) Parameters() core.ParameterSnapshot {
	p := r.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rings",
			Params: []core.Parameter{
				core.IntParam("dots_per_ring", "Dots per ring", p.DotsPerRing),
				core.FloatParam("inner_radius", "Inner radius / width", p.InnerRadius),
				core.FloatParam("outer_radius", "Outer radius / width", p.OuterRadius),
				core.FloatParam("ring_step", "Rotation per tick (rad)", p.AngularStep),
				core.FloatParam("arc_radius", "Arc radius / width", p.ArcRadius),
				core.FloatParam("ring_offset_y", "Center offset / height", p.CenterOffsetY),
			},
		},
	}}
}
