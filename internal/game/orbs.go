package game

import "math"

// Orb is a collectible energy mote. Collecting every orb completes the
// level.
type Orb struct {
	X, Y  float64
	Phase float64 // bob animation
	Alive bool
}

type OrbSystem struct {
	Orbs []Orb
	seed uint64
}

func NewOrbSystem(seed uint64) *OrbSystem {
	return &OrbSystem{seed: seed}
}

func (ob *OrbSystem) Reset(seed uint64) {
	ob.seed = seed
	ob.Orbs = ob.Orbs[:0]
}

// SpawnRandom scatters up to count orbs on clear ground away from
// crystals so every orb is reachable. Rejection sampling is capped; a
// saturated garden yields fewer orbs rather than a stalled frame.
func (ob *OrbSystem) SpawnRandom(w *World, crystals *CrystalSystem, count int) {
	r := NewRand(ob.seed ^ 0x0B0E)
	for attempts := 0; len(ob.Orbs) < count && attempts < count*12; attempts++ {
		x := r.RangeF(BorderMargin, WorldWidth-BorderMargin)
		y := r.RangeF(BorderMargin, WorldHeight-BorderMargin)
		if !w.ClearOfFlora(x, y, OrbPickupRadius) {
			continue
		}
		tooClose := false
		for i := range crystals.Crystals {
			c := &crystals.Crystals[i]
			if !c.Alive {
				continue
			}
			if math.Hypot(c.X-x, c.Y-y) < c.R+OrbPickupRadius+2 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		ob.Orbs = append(ob.Orbs, Orb{X: x, Y: y, Phase: r.RangeF(0, 2*math.Pi), Alive: true})
	}

	// The cap can reject every candidate, but a level with zero orbs
	// completes the moment it starts. Drop the crystal clearance, then
	// the flora clearance, before giving up on a nicer spot.
	if len(ob.Orbs) == 0 && count > 0 {
		x := r.RangeF(BorderMargin, WorldWidth-BorderMargin)
		y := r.RangeF(BorderMargin, WorldHeight-BorderMargin)
		for i := 0; i < 32 && !w.ClearOfFlora(x, y, OrbPickupRadius); i++ {
			x = r.RangeF(BorderMargin, WorldWidth-BorderMargin)
			y = r.RangeF(BorderMargin, WorldHeight-BorderMargin)
		}
		ob.Orbs = append(ob.Orbs, Orb{X: x, Y: y, Phase: r.RangeF(0, 2*math.Pi), Alive: true})
	}
}

func (ob *OrbSystem) AliveCount() int {
	n := 0
	for i := range ob.Orbs {
		if ob.Orbs[i].Alive {
			n++
		}
	}
	return n
}

func (ob *OrbSystem) Update(dt float64) {
	for i := range ob.Orbs {
		ob.Orbs[i].Phase += dt * OrbBobSpeed
	}
}

// Collect picks up any orb within reach of the rocket. Pickup is a plain
// distance check against a handful of orbs; they are rewards, not
// obstacles, so they stay out of the collision buffers.
func (ob *OrbSystem) Collect(r *Rocket, particles *ParticlePool, events *EventBus) {
	if r == nil || !r.Alive {
		return
	}
	for i := range ob.Orbs {
		o := &ob.Orbs[i]
		if !o.Alive {
			continue
		}
		if math.Hypot(o.X-r.X, o.Y-r.Y) > OrbPickupRadius {
			continue
		}
		o.Alive = false
		SpawnOrbSparkle(particles, o.X, o.Y)
		events.Emit(Event{Type: EventOrbCollected, X: o.X, Y: o.Y, Magnitude: 1})
	}
}

// RenderData packs live orbs: a soft halo plus a bobbing bright core.
func (ob *OrbSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ob.Orbs {
		o := &ob.Orbs[i]
		if !o.Alive {
			continue
		}
		bob := math.Sin(o.Phase) * 0.4
		halo := Palette.Orb
		core := Palette.OrbCore
		buf = append(buf,
			float32(o.X), float32(o.Y+bob), 2.2,
			float32(halo.R)/255, float32(halo.G)/255, float32(halo.B)/255, 0.6, 0,
		)
		buf = append(buf,
			float32(o.X), float32(o.Y+bob), 1.0,
			float32(core.R)/255, float32(core.G)/255, float32(core.B)/255, 1, 0,
		)
	}
	return buf
}

// GlowData returns additive halos, brighter at night.
func (ob *OrbSystem) GlowData(buf []float32, night float32) []float32 {
	buf = buf[:0]
	brightness := 0.4 + night*0.6
	for i := range ob.Orbs {
		o := &ob.Orbs[i]
		if !o.Alive {
			continue
		}
		bob := math.Sin(o.Phase) * 0.4
		r := float32(Palette.Orb.R) / 255 * brightness
		g := float32(Palette.Orb.G) / 255 * brightness
		b := float32(Palette.Orb.B) / 255 * brightness
		buf = append(buf, float32(o.X), float32(o.Y+bob), 5.0, r, g, b, 1, 0)
	}
	return buf
}
