package figures

import "orbitfx/internal/core"

// Parameters describes the active configuration for HUDs and tooling.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "View",
			Params: []core.Parameter{
				core.FloatParam("w", "Width", f.w),
				core.FloatParam("h", "Height", f.h),
				core.Int64Param("seed", "Seed", f.cfg.Seed),
			},
		},
		{
			Name: "Figures",
			Params: []core.Parameter{
				core.IntParam("count", "Figure count", p.Count),
				core.FloatParam("scale_min", "Scale min", p.ScaleMin),
				core.FloatParam("scale_max", "Scale span", p.ScaleMax),
				core.FloatParam("alpha_scale_weight", "Alpha scale weight", p.AlphaScaleWeight),
				core.FloatParam("alpha_random_weight", "Alpha random weight", p.AlphaRandomWeight),
			},
		},
		{
			Name:    "Motion",
			Summary: "angular step = speed * dt(s) * angular_step_scale",
			Params: []core.Parameter{
				core.FloatParam("base_speed", "Base speed", p.BaseSpeed),
				core.FloatParam("angular_step_scale", "Angular step scale", p.AngularStepScale),
				core.FloatParam("radius_factor", "Orbit radius / width", p.RadiusFactor),
				core.BoolParam("bidirectional", "Bidirectional orbits", p.Bidirectional),
				core.FloatParam("center_x_min", "Center X min", p.CenterXMin),
				core.FloatParam("center_x_max", "Center X max", p.CenterXMax),
				core.FloatParam("center_y_min", "Center Y min", p.CenterYMin),
				core.FloatParam("center_y_max", "Center Y max", p.CenterYMax),
			},
		},
		{
			Name: "Lifetime",
			Params: []core.Parameter{
				core.IntParam("lifetime_min", "Lifetime min (ticks)", p.LifetimeMin),
				core.IntParam("lifetime_max", "Lifetime max (ticks)", p.LifetimeMax),
				core.BoolParam("time_scaled_lifetime", "Time scaled decay", p.TimeScaledLifetime),
				core.FloatParam("tick_ms", "Tick length (ms)", p.TickMs),
				core.BoolParam("hide_respawned", "Hide on respawn tick", p.HideRespawned),
				core.BoolParam("fade_in", "Fade in respawns", p.FadeIn),
				core.FloatParam("fade_frequency", "Fade frequency", p.FadeFrequency),
			},
		},
	}}
}
