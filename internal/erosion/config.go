package erosion

import "strconv"

// Config controls one hydraulic erosion run.
type Config struct {
	// Iterations is the number of independent droplets simulated.
	Iterations int
	// Strength scales how much material each erosion step removes.
	Strength float64
	// SedimentCapacity scales how much sediment a droplet can carry.
	SedimentCapacity float64
	// Evaporation is the per-step water loss fraction in [0, 1).
	Evaporation float64

	Seed int64
}

// DefaultConfig returns the standard erosion configuration.
func DefaultConfig() Config {
	return Config{
		Iterations:       50000,
		Strength:         0.3,
		SedimentCapacity: 4,
		Evaporation:      0.02,
		Seed:             1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["erosion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["erosion_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Strength = parsed
		}
	}
	if v, ok := cfg["sediment_capacity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SedimentCapacity = parsed
		}
	}
	if v, ok := cfg["evaporation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Evaporation = parsed
		}
	}
	if v, ok := cfg["erosion_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
