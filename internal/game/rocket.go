package game

import "math"

// Rocket is the player: a hovering craft steered by turn + thrust.
// Altitude settles toward cruise height; it only matters for the
// stride-4 spore collision query and a little render parallax.
type Rocket struct {
	X, Y, Z float64
	VX, VY  float64
	Heading float64 // radians, 0 = +X

	Fuel  float64
	Hull  int
	Alive bool

	Thrusting   bool
	InvulnTimer float64 // grace period after a hit
	exhaustAcc  float64 // spawn accumulator for exhaust flakes
}

func NewRocket(x, y, fuel float64) *Rocket {
	return &Rocket{
		X: x, Y: y, Z: RocketCruiseAlt,
		Heading: -math.Pi / 2,
		Fuel:    fuel,
		Hull:    RocketMaxHull,
		Alive:   true,
	}
}

// Speed returns the current planar speed.
func (r *Rocket) Speed() float64 {
	return math.Hypot(r.VX, r.VY)
}

// Steer turns toward the target heading at the fixed turn rate.
func (r *Rocket) Steer(target, dt float64) {
	d := angDiff(r.Heading, target)
	maxTurn := RocketTurnRate * dt
	r.Heading += clampF(d, -maxTurn, maxTurn)
}

// Update integrates one frame of flight. Thrust burns fuel; an empty tank
// still steers but only coasts, so running dry far from the last orb is a
// soft loss.
func (r *Rocket) Update(dt float64, thrust bool, particles *ParticlePool) {
	if !r.Alive {
		return
	}

	r.Thrusting = thrust && r.Fuel > 0
	if r.Thrusting {
		r.VX += math.Cos(r.Heading) * RocketThrust * dt
		r.VY += math.Sin(r.Heading) * RocketThrust * dt
		r.Fuel -= RocketBurnRate * dt
		if r.Fuel < 0 {
			r.Fuel = 0
		}

		// Exhaust flakes stream opposite the heading, rate-limited by an
		// accumulator so spawn density is framerate-independent.
		r.exhaustAcc += dt * 60
		for r.exhaustAcc >= 1 {
			r.exhaustAcc -= 1
			bx := -math.Cos(r.Heading) * 2.2
			by := -math.Sin(r.Heading) * 2.2
			SpawnExhaust(particles, r.X, r.Y, r.Z, bx, by)
		}
	}

	// Drag, then speed cap.
	decay := math.Exp(-RocketDrag * dt)
	r.VX *= decay
	r.VY *= decay
	if spd := r.Speed(); spd > RocketMaxSpeed {
		k := RocketMaxSpeed / spd
		r.VX *= k
		r.VY *= k
	}

	r.X += r.VX * dt
	r.Y += r.VY * dt

	// Soft border: slide along the world edge instead of leaving it.
	if r.X < RocketRadius {
		r.X = RocketRadius
		if r.VX < 0 {
			r.VX = 0
		}
	} else if r.X > WorldWidth-RocketRadius {
		r.X = WorldWidth - RocketRadius
		if r.VX > 0 {
			r.VX = 0
		}
	}
	if r.Y < RocketRadius {
		r.Y = RocketRadius
		if r.VY < 0 {
			r.VY = 0
		}
	} else if r.Y > WorldHeight-RocketRadius {
		r.Y = WorldHeight - RocketRadius
		if r.VY > 0 {
			r.VY = 0
		}
	}

	// Altitude settles toward cruise height.
	r.Z = approach(r.Z, RocketCruiseAlt, 3.0*dt)

	if r.InvulnTimer > 0 {
		r.InvulnTimer -= dt
	}
}

// HitCrystal resolves a collision-buffer hit against crystal c. A fast
// impact shatters the crystal, costs hull, and bounces the rocket; a slow
// brush just bounces.
func (r *Rocket) HitCrystal(c *Crystal, crystals *CrystalSystem, ci int, particles *ParticlePool, events *EventBus) {
	dx := r.X - c.X
	dy := r.Y - c.Y
	d := math.Hypot(dx, dy)
	if d < 0.001 {
		dx, dy, d = 1, 0, 1
	}
	nx := dx / d
	ny := dy / d

	fast := r.Speed() > CrashSpeed
	// Reflect the incoming velocity and damp it.
	dot := r.VX*nx + r.VY*ny
	if dot < 0 {
		r.VX -= 2 * dot * nx
		r.VY -= 2 * dot * ny
		r.VX *= 0.45
		r.VY *= 0.45
	}
	// Push out of the overlap.
	r.X = c.X + nx*(c.R+RocketRadius+0.1)
	r.Y = c.Y + ny*(c.R+RocketRadius+0.1)

	if !fast || r.InvulnTimer > 0 {
		return
	}
	crystals.Shatter(ci, particles, events)
	r.damage(particles, events)
}

// HitSpore resolves a brush with a spore cloud: fuel drain, no hull loss.
func (r *Rocket) HitSpore(c *SporeCloud, dt float64, particles *ParticlePool, events *EventBus) {
	r.Fuel -= 6.0 * dt
	if r.Fuel < 0 {
		r.Fuel = 0
	}
	// Puff at most a few times a second, keyed off the cloud's phase.
	if math.Mod(c.Phase, 0.45) < dt*1.3 {
		SpawnSporePuff(particles, r.X, r.Y, r.Z)
		events.Emit(Event{Type: EventSporeHit, X: r.X, Y: r.Y, Magnitude: 1})
	}
}

func (r *Rocket) damage(particles *ParticlePool, events *EventBus) {
	r.Hull--
	r.InvulnTimer = RocketInvulnTime
	if r.Hull > 0 {
		SpawnExplosion(particles, r.X, r.Y, r.Z, 0.5)
		events.Emit(Event{Type: EventExplosion, X: r.X, Y: r.Y, Magnitude: 0.5})
		return
	}
	r.Alive = false
	SpawnExplosion(particles, r.X, r.Y, r.Z, 1.6)
	events.Emit(Event{Type: EventRocketDestroyed, X: r.X, Y: r.Y, Magnitude: 1.6})
}

// RenderData packs the rocket as a handful of sprites: body disc, nose
// cone offset along the heading, and a shadow that lags the altitude.
// The rocket blinks while invulnerable.
func (r *Rocket) RenderData(buf []float32, now float64) []float32 {
	buf = buf[:0]
	if !r.Alive {
		return buf
	}
	if r.InvulnTimer > 0 && math.Mod(now*8, 1) < 0.4 {
		return buf
	}

	// Ground shadow, offset by altitude.
	buf = append(buf,
		float32(r.X+r.Z*0.25), float32(r.Y+r.Z*0.35), 2.0,
		0, 0, 0, 0.25, 0,
	)

	body := Palette.RocketBody
	buf = append(buf,
		float32(r.X), float32(r.Y), 2.4,
		float32(body.R)/255, float32(body.G)/255, float32(body.B)/255, 1, float32(r.Heading),
	)
	nose := Palette.RocketNose
	nx := r.X + math.Cos(r.Heading)*1.6
	ny := r.Y + math.Sin(r.Heading)*1.6
	buf = append(buf,
		float32(nx), float32(ny), 1.2,
		float32(nose.R)/255, float32(nose.G)/255, float32(nose.B)/255, 1, float32(r.Heading),
	)
	return buf
}

// GlowData returns the engine glow while thrusting.
func (r *Rocket) GlowData(buf []float32) []float32 {
	buf = buf[:0]
	if !r.Alive || !r.Thrusting {
		return buf
	}
	gx := r.X - math.Cos(r.Heading)*2.0
	gy := r.Y - math.Sin(r.Heading)*2.0
	glow := Palette.Glow.Mul(204)
	buf = append(buf,
		float32(gx), float32(gy), 4.0,
		float32(glow.R)/255, float32(glow.G)/255, float32(glow.B)/255, 1, 0,
	)
	return buf
}

// HUDData draws a fuel bar and hull pips floating above the rocket, so
// status reads without a text overlay.
func (r *Rocket) HUDData(buf []float32) []float32 {
	buf = buf[:0]
	if !r.Alive {
		return buf
	}
	baseY := r.Y - 5.5

	// Fuel bar: dark backing strip, bright fill proportional to fuel.
	const barW = 6.0
	frac := clampF(r.Fuel/RocketMaxFuel, 0, 1)
	for s := 0.0; s < barW; s += 0.75 {
		filled := s/barW < frac
		cr, cg, cb := float32(0.15), float32(0.15), float32(0.18)
		if filled {
			cr, cg, cb = 0.95, 0.75, 0.2
			if frac < 0.25 {
				cr, cg, cb = 0.95, 0.25, 0.15
			}
		}
		buf = append(buf, float32(r.X-barW/2+s), float32(baseY), 0.7, cr, cg, cb, 0.9, 0)
	}

	// Hull pips.
	for h := 0; h < RocketMaxHull; h++ {
		cr, cg, cb := float32(0.2), float32(0.2), float32(0.22)
		if h < r.Hull {
			cr, cg, cb = 0.35, 0.85, 0.4
		}
		buf = append(buf, float32(r.X-1.5+float64(h)*1.5), float32(baseY-1.3), 0.6, cr, cg, cb, 0.9, 0)
	}
	return buf
}
