package terrain

import (
	"strconv"

	"terragen/internal/core"
)

// Parameters exposes the active configuration for the HUD panel and the
// tuning CLIs. The snapshot is display-only.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Grid width", c.Width),
				intParam("h", "Grid height", c.Height),
				floatParam("world_width", "World width", c.WorldWidth),
				floatParam("world_length", "World length", c.WorldLength),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("base_height", "Base height", c.Synth.BaseHeight),
				floatParam("hill_height", "Hill height", c.Synth.HillHeight),
				floatParam("mountain_height", "Mountain height", c.Synth.MountainHeight),
				floatParam("continent_frequency", "Continent freq", c.Synth.ContinentFrequency),
				floatParam("continent_threshold", "Continent threshold", c.Synth.ContinentThreshold),
				floatParam("shaping_exponent", "Shaping exponent", c.Synth.ShapingExponent),
			},
		},
		{
			Name: "Erosion",
			Params: []core.Parameter{
				intParam("erosion_iterations", "Droplets", c.Erosion.Iterations),
				floatParam("erosion_strength", "Strength", c.Erosion.Strength),
				floatParam("sediment_capacity", "Sediment capacity", c.Erosion.SedimentCapacity),
				floatParam("evaporation", "Evaporation", c.Erosion.Evaporation),
			},
		},
		{
			Name: "Climate",
			Params: []core.Parameter{
				floatParam("latitude_exponent", "Latitude exponent", c.Climate.LatitudeExponent),
				floatParam("noise_weight", "Noise weight", c.Climate.NoiseWeight),
				floatParam("altitude_cooling", "Altitude cooling", c.Climate.AltitudeCooling),
				floatParam("valley_moisture_boost", "Valley moisture", c.Climate.ValleyMoistureBoost),
			},
		},
		{
			Name:    "Biomes",
			Summary: strconv.Itoa(c.Biomes.Len()) + " biomes",
			Params: []core.Parameter{
				floatParam("falloff_rate", "Falloff rate", c.FalloffRate),
				floatParam("blend_factor", "Global blend", c.GlobalBlendFactor),
				{Key: "use_global_blend", Label: "Use global blend", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.UseGlobalBlend)},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
