package game

// World dimensions (in world pixels).
// 4:3 so the auto-fit camera fills the default window without letterboxing.
const (
	WorldWidth  = 360
	WorldHeight = 270
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 720
	DefaultZoom  = 3.0
	MinZoom      = 1.5
	MaxZoom      = 10.0
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 8000
)

// Rocket physics/visual.
const (
	RocketTurnRate   = 4.2  // rad/s
	RocketThrust     = 95.0 // units/s²
	RocketDrag       = 0.9  // exponential velocity decay rate
	RocketMaxSpeed   = 120.0
	RocketRadius     = 2.2
	RocketMaxFuel    = 100.0
	RocketBurnRate   = 7.5 // fuel/s under thrust
	RocketMaxHull    = 3
	RocketCruiseAlt  = 4.0 // hover altitude
	RocketInvulnTime = 1.2 // grace period after taking a hit
	CrashSpeed       = 55.0
)

// Crystals.
const (
	CrystalMinRadius = 2.0
	CrystalMaxRadius = 5.5
)

// Spore clouds.
const (
	SporeMinRadius  = 4.0
	SporeMaxRadius  = 9.0
	SporeDriftSpeed = 6.0
	SporeAltitude   = 4.0 // mean float height, matches rocket cruise
)

// Orbs.
const (
	OrbPickupRadius = 3.2
	OrbBobSpeed     = 2.4
)

// Flora layout.
const (
	FloraCell       = 12 // placement grid step in world pixels
	FloraNoiseScale = 0.035
	TreeThreshold   = 0.34
	MossThreshold   = 0.12
)

// Flora culling quadtree.
const (
	QuadCapacity = 16
	QuadMaxDepth = 8
)

// World border margin kept clear of hazards so the rocket can always turn around.
const BorderMargin = 8
