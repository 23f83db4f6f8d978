package game

import "math"

// PoolConfig holds the cosmetic tuning knobs of the particle pool.
// Exact values are tuning, not contract; keep them here rather than
// hard-coded in the update loop.
type PoolConfig struct {
	Gravity  float64 // downward bias applied to VY each second
	SpinRate float64 // accumulated rotation, rad/s

	LifeMin, LifeMax   float64 // total lifespan range, seconds
	SpeedMin, SpeedMax float64 // fraction of requested speed
	SizeMin, SizeMax   float64 // fraction of requested size
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Gravity:  2.0,
		SpinRate: 3.4,
		LifeMin:  0.5,
		LifeMax:  1.0,
		SpeedMin: 0.5,
		SpeedMax: 1.0,
		SizeMin:  0.8,
		SizeMax:  1.2,
	}
}

// EmitParams describes one burst request. All fields are required;
// Count is clamped to >= 0, everything else is trusted finite input.
type EmitParams struct {
	X, Y, Z float64 // origin
	Col     RGB
	Count   int
	Speed   float64 // mean outward velocity magnitude
	Size    float64 // base visual size
	Spread  float64 // positional jitter diameter per axis
}

// ParticlePool is a fixed-capacity pool of transient point effects.
// Attributes live in parallel arrays of length cap; indices [0, n)
// are always the live set, kept dense by swap-remove in Update.
// When the pool is full, further Emit requests are dropped silently:
// a missing spark is imperceptible, a blocked frame is not.
type ParticlePool struct {
	cap int
	n   int
	cfg PoolConfig
	rng *Rand

	posX, posY, posZ []float64
	velX, velY, velZ []float64
	life             []float64 // remaining, seconds; live iff > 0
	maxLife          []float64
	size             []float64
	spin             []float64
	colR, colG, colB []float32
}

func NewParticlePool(capacity int, cfg PoolConfig, seed uint64) *ParticlePool {
	if capacity <= 0 {
		capacity = MaxParticles
	}
	return &ParticlePool{
		cap:     capacity,
		cfg:     cfg,
		rng:     NewRand(seed),
		posX:    make([]float64, capacity),
		posY:    make([]float64, capacity),
		posZ:    make([]float64, capacity),
		velX:    make([]float64, capacity),
		velY:    make([]float64, capacity),
		velZ:    make([]float64, capacity),
		life:    make([]float64, capacity),
		maxLife: make([]float64, capacity),
		size:    make([]float64, capacity),
		spin:    make([]float64, capacity),
		colR:    make([]float32, capacity),
		colG:    make([]float32, capacity),
		colB:    make([]float32, capacity),
	}
}

func (pp *ParticlePool) Len() int { return pp.n }
func (pp *ParticlePool) Cap() int { return pp.cap }

func (pp *ParticlePool) Clear() { pp.n = 0 }

// Emit appends up to p.Count particles at the burst origin. Once the pool
// is full the remaining requests are dropped without error.
func (pp *ParticlePool) Emit(p EmitParams) {
	r := pp.rng
	cr := float32(p.Col.R) / 255.0
	cg := float32(p.Col.G) / 255.0
	cb := float32(p.Col.B) / 255.0
	half := p.Spread * 0.5

	for c := 0; c < p.Count; c++ {
		if pp.n == pp.cap {
			return
		}
		i := pp.n
		pp.n++

		pp.posX[i] = p.X + r.RangeF(-half, half)
		pp.posY[i] = p.Y + r.RangeF(-half, half)
		pp.posZ[i] = p.Z + r.RangeF(-half, half)

		dx, dy, dz := r.unitVec3()
		spd := p.Speed * r.RangeF(pp.cfg.SpeedMin, pp.cfg.SpeedMax)
		pp.velX[i] = dx * spd
		pp.velY[i] = dy * spd
		pp.velZ[i] = dz * spd

		l := r.RangeF(pp.cfg.LifeMin, pp.cfg.LifeMax)
		pp.life[i] = l
		pp.maxLife[i] = l
		pp.size[i] = p.Size * r.RangeF(pp.cfg.SizeMin, pp.cfg.SizeMax)
		pp.spin[i] = 0
		pp.colR[i] = cr
		pp.colG[i] = cg
		pp.colB[i] = cb
	}
}

// unitVec3 samples a direction by normalizing a random cube vector.
// A degenerate near-zero sample falls back to +Y so velocity is never NaN.
func (r *Rand) unitVec3() (x, y, z float64) {
	x = r.RangeF(-1, 1)
	y = r.RangeF(-1, 1)
	z = r.RangeF(-1, 1)
	d2 := x*x + y*y + z*z
	if d2 < 1e-12 {
		return 0, 1, 0
	}
	inv := 1.0 / math.Sqrt(d2)
	return x * inv, y * inv, z * inv
}

// RenderData packs live particles as point sprites into buf, reusing its
// backing storage. Format: [x, y, size, r, g, b, a, rotation] * Len().
// Size and alpha scale with the remaining life fraction so particles
// shrink and fade to nothing instead of popping out.
func (pp *ParticlePool) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := 0; i < pp.n; i++ {
		frac := pp.life[i] / pp.maxLife[i]
		buf = append(buf,
			float32(pp.posX[i]),
			float32(pp.posY[i]),
			float32(pp.size[i]*frac),
			pp.colR[i],
			pp.colG[i],
			pp.colB[i],
			float32(frac),
			float32(pp.spin[i]),
		)
	}
	return buf
}
