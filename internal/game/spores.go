package game

import "math"

// SporeCloud is a slow-drifting airborne hazard with a vertical extent,
// so its obstacle record carries a z coordinate (stride-4 category).
type SporeCloud struct {
	X, Y, Z float64
	R       float64
	VX, VY  float64
	Phase   float64 // bob/pulse animation
}

type SporeSystem struct {
	Clouds []SporeCloud
	seed   uint64
}

func NewSporeSystem(seed uint64) *SporeSystem {
	return &SporeSystem{seed: seed}
}

func (ss *SporeSystem) Reset(seed uint64) {
	ss.seed = seed
	ss.Clouds = ss.Clouds[:0]
}

func (ss *SporeSystem) SpawnRandom(count int) {
	r := NewRand(ss.seed ^ 0x5B04E)
	for i := 0; i < count; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(0.4, 1.0) * SporeDriftSpeed
		ss.Clouds = append(ss.Clouds, SporeCloud{
			X:     r.RangeF(BorderMargin, WorldWidth-BorderMargin),
			Y:     r.RangeF(BorderMargin, WorldHeight-BorderMargin),
			Z:     SporeAltitude + r.RangeF(-1.5, 1.5),
			R:     r.RangeF(SporeMinRadius, SporeMaxRadius),
			VX:    math.Cos(ang) * spd,
			VY:    math.Sin(ang) * spd,
			Phase: r.RangeF(0, 2*math.Pi),
		})
	}
}

// Update drifts the clouds, bouncing softly off the world border.
func (ss *SporeSystem) Update(dt float64) {
	for i := range ss.Clouds {
		c := &ss.Clouds[i]
		c.X += c.VX * dt
		c.Y += c.VY * dt
		c.Phase += dt * 1.3

		if c.X < BorderMargin {
			c.X = BorderMargin
			c.VX = -c.VX
		} else if c.X > WorldWidth-BorderMargin {
			c.X = WorldWidth - BorderMargin
			c.VX = -c.VX
		}
		if c.Y < BorderMargin {
			c.Y = BorderMargin
			c.VY = -c.VY
		} else if c.Y > WorldHeight-BorderMargin {
			c.Y = WorldHeight - BorderMargin
			c.VY = -c.VY
		}
	}
}

// WriteObstacles rewrites every cloud into the sphere buffer and returns
// the record count. Effective radius pulses slightly with the animation
// phase so near-misses feel organic.
func (ss *SporeSystem) WriteObstacles(sb *SphereBuffer) int {
	n := len(ss.Clouds)
	sb.EnsureCapacity(n)
	for i := range ss.Clouds {
		c := &ss.Clouds[i]
		r := c.R * (0.92 + 0.08*math.Sin(c.Phase))
		sb.Set(i, float32(c.X), float32(c.Y), float32(c.Z), float32(r))
	}
	return n
}

// RenderData packs the clouds as layered translucent blobs.
func (ss *SporeSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ss.Clouds {
		c := &ss.Clouds[i]
		pulse := 0.92 + 0.08*math.Sin(c.Phase)
		outer := Palette.Spore
		core := Palette.SporeCore
		buf = append(buf,
			float32(c.X), float32(c.Y), float32(c.R*pulse),
			float32(outer.R)/255, float32(outer.G)/255, float32(outer.B)/255, 0.35, 0,
		)
		buf = append(buf,
			float32(c.X), float32(c.Y), float32(c.R*pulse*0.55),
			float32(core.R)/255, float32(core.G)/255, float32(core.B)/255, 0.5, 0,
		)
	}
	return buf
}
