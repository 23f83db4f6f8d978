package game

import (
	"math"
	"testing"
)

func TestRocketThrustBurnsFuel(t *testing.T) {
	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	r := NewRocket(100, 100, 50)

	r.Update(0.1, true, pp)
	if r.Speed() <= 0 {
		t.Errorf("thrust should accelerate the rocket")
	}
	if r.Fuel >= 50 {
		t.Errorf("thrust should burn fuel, still at %v", r.Fuel)
	}
	if pp.Len() == 0 {
		t.Errorf("thrust should stream exhaust particles")
	}
	if !r.Thrusting {
		t.Errorf("Thrusting flag should be set while burning")
	}
}

func TestRocketEmptyTankCoasts(t *testing.T) {
	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	r := NewRocket(100, 100, 0)
	r.VX = 10

	r.Update(0.1, true, pp)
	if r.Thrusting {
		t.Errorf("empty tank should not thrust")
	}
	if r.Fuel != 0 {
		t.Errorf("fuel should stay at zero, got %v", r.Fuel)
	}
	if r.VX >= 10 {
		t.Errorf("drag should slow a coasting rocket, VX=%v", r.VX)
	}
	if r.X <= 100 {
		t.Errorf("coasting rocket should still move")
	}
}

func TestRocketSpeedCap(t *testing.T) {
	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	r := NewRocket(100, 100, RocketMaxFuel)
	r.VX = RocketMaxSpeed * 3

	r.Update(0.01, false, pp)
	if s := r.Speed(); s > RocketMaxSpeed+0.001 {
		t.Errorf("speed %v exceeds the cap %v", s, float64(RocketMaxSpeed))
	}
}

func TestRocketSteerTurnRateLimited(t *testing.T) {
	r := NewRocket(0, 0, 0)
	start := r.Heading

	r.Steer(start+math.Pi, 0.1)
	turned := math.Abs(angDiff(start, r.Heading))
	want := RocketTurnRate * 0.1
	if math.Abs(turned-want) > 1e-9 {
		t.Errorf("one tick should turn %v, turned %v", want, turned)
	}

	// Small corrections settle exactly on the target.
	r.Heading = start
	r.Steer(start+0.05, 0.1)
	if math.Abs(angDiff(r.Heading, start+0.05)) > 1e-9 {
		t.Errorf("small correction should land on target, heading %v", r.Heading)
	}
}

func TestRocketStaysInWorld(t *testing.T) {
	pp := NewParticlePool(64, DefaultPoolConfig(), 1)
	r := NewRocket(5, 5, 0)
	r.VX, r.VY = -200, -200

	for i := 0; i < 30; i++ {
		r.Update(0.05, false, pp)
	}
	if r.X < RocketRadius || r.Y < RocketRadius {
		t.Errorf("rocket escaped the border: (%v,%v)", r.X, r.Y)
	}
}

func TestRocketAltitudeSettles(t *testing.T) {
	pp := NewParticlePool(64, DefaultPoolConfig(), 1)
	r := NewRocket(100, 100, 0)
	r.Z = 0

	for i := 0; i < 120; i++ {
		r.Update(1.0/60, false, pp)
	}
	if math.Abs(r.Z-RocketCruiseAlt) > 0.01 {
		t.Errorf("altitude should settle at cruise height, got %v", r.Z)
	}
}

func TestHitCrystalSlowBrush(t *testing.T) {
	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	events := NewEventBus()
	cs := NewCrystalSystem(1)
	cs.Crystals = []Crystal{{X: 100, Y: 100, R: 3, Alive: true}}

	r := NewRocket(100+3.5, 100, 50)
	r.VX = -10 // slow approach, well under crash speed

	r.HitCrystal(&cs.Crystals[0], cs, 0, pp, events)

	if !cs.Crystals[0].Alive {
		t.Errorf("slow brush should not shatter the crystal")
	}
	if r.Hull != RocketMaxHull {
		t.Errorf("slow brush should not cost hull, got %d", r.Hull)
	}
	if r.VX <= 0 {
		t.Errorf("bounce should reverse the approach velocity, VX=%v", r.VX)
	}
	d := math.Hypot(r.X-100, r.Y-100)
	if d < 3+RocketRadius {
		t.Errorf("rocket should be pushed clear of the crystal, dist=%v", d)
	}
}

func TestHitCrystalFastImpact(t *testing.T) {
	pp := NewParticlePool(1024, DefaultPoolConfig(), 1)
	events := NewEventBus()
	shattered, exploded := 0, 0
	events.Subscribe(EventCrystalShattered, func(Event) { shattered++ })
	events.Subscribe(EventExplosion, func(Event) { exploded++ })

	cs := NewCrystalSystem(1)
	cs.Crystals = []Crystal{{X: 100, Y: 100, R: 3, Alive: true}}

	r := NewRocket(100+3.5, 100, 50)
	r.VX = -(CrashSpeed + 20)

	r.HitCrystal(&cs.Crystals[0], cs, 0, pp, events)

	if cs.Crystals[0].Alive {
		t.Errorf("fast impact should shatter the crystal")
	}
	if r.Hull != RocketMaxHull-1 {
		t.Errorf("fast impact should cost one hull, got %d", r.Hull)
	}
	if shattered != 1 || exploded != 1 {
		t.Errorf("want shatter and explosion events, got %d and %d", shattered, exploded)
	}
	if r.InvulnTimer <= 0 {
		t.Errorf("damage should grant an invulnerability window")
	}

	// A second crystal hit inside the window bounces but costs nothing.
	cs.Crystals = append(cs.Crystals, Crystal{X: 100, Y: 100, R: 3, Alive: true})
	r.X, r.Y = 100+3.5, 100
	r.VX = -(CrashSpeed + 20)
	r.HitCrystal(&cs.Crystals[1], cs, 1, pp, events)
	if !cs.Crystals[1].Alive || r.Hull != RocketMaxHull-1 {
		t.Errorf("invulnerable rocket should neither shatter nor take damage")
	}
}

func TestRocketDestroyedAtZeroHull(t *testing.T) {
	pp := NewParticlePool(1024, DefaultPoolConfig(), 1)
	events := NewEventBus()
	destroyed := 0
	events.Subscribe(EventRocketDestroyed, func(Event) { destroyed++ })

	r := NewRocket(100, 100, 50)
	for r.Hull > 0 {
		r.InvulnTimer = 0
		r.damage(pp, events)
	}
	if r.Alive {
		t.Errorf("rocket at zero hull should be dead")
	}
	if destroyed != 1 {
		t.Errorf("want one destruction event, got %d", destroyed)
	}
}

func TestHitSporeDrainsFuel(t *testing.T) {
	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	events := NewEventBus()
	r := NewRocket(100, 100, 10)
	c := SporeCloud{X: 100, Y: 100, Z: r.Z, R: 5, Phase: 1.0}

	before := r.Fuel
	r.HitSpore(&c, 1.0/60, pp, events)
	if r.Fuel >= before {
		t.Errorf("spore contact should drain fuel")
	}
	if r.Hull != RocketMaxHull {
		t.Errorf("spores should never cost hull")
	}

	r.Fuel = 0.001
	for i := 0; i < 100; i++ {
		r.HitSpore(&c, 1.0/60, pp, events)
	}
	if r.Fuel != 0 {
		t.Errorf("fuel should clamp at zero, got %v", r.Fuel)
	}
}
