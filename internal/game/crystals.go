package game

import "math"

// Crystal is a crystalline hazard rooted in the garden floor. Dead
// crystals stay in the slice so obstacle indices remain stable within a
// frame; the live region is rebuilt into the collision buffer every frame
// in spawn order.
type Crystal struct {
	X, Y    float64
	R       float64
	Col     RGB
	Alive   bool
	Sparkle float64 // glint animation phase
}

type CrystalSystem struct {
	Crystals []Crystal
	seed     uint64
}

func NewCrystalSystem(seed uint64) *CrystalSystem {
	return &CrystalSystem{seed: seed}
}

func (cs *CrystalSystem) Reset(seed uint64) {
	cs.seed = seed
	cs.Crystals = cs.Crystals[:0]
}

// SpawnRandom grows up to count crystals on clear ground, away from the
// world border and the rocket's spawn point at the world centre. The
// attempt cap bounds the rejection sampling: on crowded ground a thinner
// field beats a level load that never returns.
func (cs *CrystalSystem) SpawnRandom(w *World, count int) {
	r := NewRand(cs.seed ^ 0xC4757A1)
	cx := float64(WorldWidth) / 2
	cy := float64(WorldHeight) / 2

	for attempts := 0; len(cs.Crystals) < count && attempts < count*12; attempts++ {
		x := r.RangeF(BorderMargin, WorldWidth-BorderMargin)
		y := r.RangeF(BorderMargin, WorldHeight-BorderMargin)
		radius := r.RangeF(CrystalMinRadius, CrystalMaxRadius)

		if math.Hypot(x-cx, y-cy) < 25 {
			continue
		}
		if !w.ClearOfFlora(x, y, radius+1.0) {
			continue
		}
		cs.Crystals = append(cs.Crystals, Crystal{
			X: x, Y: y, R: radius,
			Col:     lerpRGB(Palette.CrystalEdge, Palette.CrystalCore, r.Float64()),
			Alive:   true,
			Sparkle: r.RangeF(0, 2*math.Pi),
		})
	}
}

func (cs *CrystalSystem) AliveCount() int {
	n := 0
	for i := range cs.Crystals {
		if cs.Crystals[i].Alive {
			n++
		}
	}
	return n
}

// WriteObstacles rewrites the live crystals into the circle buffer and
// returns the record count for this frame's queries. Records are written
// in spawn order so Test's first-match tie-break is stable.
func (cs *CrystalSystem) WriteObstacles(cb *CircleBuffer) int {
	n := 0
	for i := range cs.Crystals {
		if cs.Crystals[i].Alive {
			n++
		}
	}
	cb.EnsureCapacity(n)
	j := 0
	for i := range cs.Crystals {
		c := &cs.Crystals[i]
		if !c.Alive {
			continue
		}
		cb.Set(j, float32(c.X), float32(c.Y), float32(c.R))
		j++
	}
	return n
}

// LiveIndex maps a collision record index back to the crystal slice.
// Returns -1 for an out-of-range record.
func (cs *CrystalSystem) LiveIndex(record int) int {
	if record < 0 {
		return -1
	}
	j := 0
	for i := range cs.Crystals {
		if !cs.Crystals[i].Alive {
			continue
		}
		if j == record {
			return i
		}
		j++
	}
	return -1
}

// Shatter destroys crystal i and bursts debris through the pool.
func (cs *CrystalSystem) Shatter(i int, particles *ParticlePool, events *EventBus) {
	if i < 0 || i >= len(cs.Crystals) || !cs.Crystals[i].Alive {
		return
	}
	c := &cs.Crystals[i]
	c.Alive = false
	SpawnShatter(particles, c.X, c.Y, c.Col, c.R)
	events.Emit(Event{Type: EventCrystalShattered, X: c.X, Y: c.Y, Magnitude: c.R})
}

// Update advances the glint animation.
func (cs *CrystalSystem) Update(dt float64) {
	for i := range cs.Crystals {
		cs.Crystals[i].Sparkle += dt * 2.1
	}
}

// RenderData packs live crystals as layered sprites: dark base facet,
// bright core, and a small glint that orbits with the sparkle phase.
func (cs *CrystalSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range cs.Crystals {
		c := &cs.Crystals[i]
		if !c.Alive {
			continue
		}
		edge := Palette.CrystalEdge
		buf = append(buf,
			float32(c.X), float32(c.Y), float32(c.R*1.1),
			float32(edge.R)/255, float32(edge.G)/255, float32(edge.B)/255, 1, 0,
		)
		core := c.Col.Add(30, 30, 30)
		buf = append(buf,
			float32(c.X), float32(c.Y-c.R*0.2), float32(c.R*0.7),
			float32(core.R)/255, float32(core.G)/255, float32(core.B)/255, 1, 0,
		)
		gx := c.X + math.Cos(c.Sparkle)*c.R*0.4
		gy := c.Y - c.R*0.3 + math.Sin(c.Sparkle)*c.R*0.2
		glint := Palette.CrystalGlint
		buf = append(buf,
			float32(gx), float32(gy), float32(c.R*0.22),
			float32(glint.R)/255, float32(glint.G)/255, float32(glint.B)/255, 1, 0,
		)
	}
	return buf
}

// GlowData returns additive night glow for live crystals, pre-multiplied
// by brightness for the glow program.
func (cs *CrystalSystem) GlowData(buf []float32, brightness float32) []float32 {
	buf = buf[:0]
	if brightness <= 0.01 {
		return buf
	}
	for i := range cs.Crystals {
		c := &cs.Crystals[i]
		if !c.Alive {
			continue
		}
		r := float32(c.Col.R) / 255 * brightness * 0.6
		g := float32(c.Col.G) / 255 * brightness * 0.6
		b := float32(c.Col.B) / 255 * brightness * 0.6
		buf = append(buf, float32(c.X), float32(c.Y), float32(c.R*2.4), r, g, b, 1, 0)
	}
	return buf
}
