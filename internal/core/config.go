package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The world dimensions are in world units, not terminal
// cells; the platform layer maps between the two.
type RuntimeConfig struct {
	WorldW   float64 // Play area width in world units
	WorldH   float64 // Play area height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic simulation (0 = time-based in platform)
}

// DefaultConfig returns a RuntimeConfig matching the reference 800x800 play
// area at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   800,
		WorldH:   800,
		TickRate: 60,
		Seed:     0,
	}
}
