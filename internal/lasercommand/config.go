package lasercommand

// Config holds the game's pacing and sizing. Times are seconds of window
// open time, distances are content-area pixels.
type Config struct {
	ParticleInterval float64 // trail particle cadence
	LaserInterval    float64 // minimum time between shots
	LaserDrawTime    float64 // how long a beam stays visible
	ExplosionLength  float64 // impact flash duration and burst particle lifetime

	AsteroidRadius float64
	AsteroidSpeed  float64 // pixels per second
	HitRadius      float64 // radius cleared from the asteroid per hit

	HitParticles   int
	BurstParticles int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ParticleInterval: 0.05,
		LaserInterval:    0.5,
		LaserDrawTime:    0.5,
		ExplosionLength:  5.0,
		AsteroidRadius:   20,
		AsteroidSpeed:    12,
		HitRadius:        16,
		HitParticles:     8,
		BurstParticles:   50,
	}
}

const (
	// impactFactor places the impact line this many radii above the bottom.
	impactFactor = 1.5
	// explosionGrowth is the final explosion radius in asteroid radii.
	explosionGrowth = 5.0
)
