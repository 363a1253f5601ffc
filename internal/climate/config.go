package climate

import "strconv"

// Config controls the temperature and humidity field generation.
type Config struct {
	// LatitudeExponent shapes the pole-to-equator temperature gradient.
	LatitudeExponent float64
	// NoiseFrequency is the grid-space frequency of the primary channels.
	NoiseFrequency float64
	// DetailFrequency is the frequency of the secondary humidity term.
	DetailFrequency float64
	// NoiseWeight blends the temperature noise term against the latitude
	// gradient (gradient gets 1-NoiseWeight).
	NoiseWeight float64
	// AltitudeCooling is the maximum fractional temperature reduction at
	// full height. Clamped to [0, 0.2]: a minor effect, not a defining one.
	AltitudeCooling float64
	// ValleyMoistureBoost is the maximum fractional humidity increase at
	// zero height. Clamped to [0, 0.15].
	ValleyMoistureBoost float64
}

// DefaultConfig returns the standard climate configuration.
func DefaultConfig() Config {
	return Config{
		LatitudeExponent:    1.6,
		NoiseFrequency:      0.012,
		DetailFrequency:     0.05,
		NoiseWeight:         0.3,
		AltitudeCooling:     0.2,
		ValleyMoistureBoost: 0.15,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["latitude_exponent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.LatitudeExponent = parsed
		}
	}
	if v, ok := cfg["climate_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseFrequency = parsed
		}
	}
	if v, ok := cfg["climate_detail_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DetailFrequency = parsed
		}
	}
	if v, ok := cfg["climate_noise_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.NoiseWeight = parsed
		}
	}
	if v, ok := cfg["altitude_cooling"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.AltitudeCooling = parsed
		}
	}
	if v, ok := cfg["valley_moisture_boost"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ValleyMoistureBoost = parsed
		}
	}
	return c
}
