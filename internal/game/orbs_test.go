package game

import "testing"

func TestOrbCollectInRange(t *testing.T) {
	ob := NewOrbSystem(1)
	ob.Orbs = []Orb{
		{X: 100, Y: 100, Alive: true},
		{X: 200, Y: 200, Alive: true},
	}

	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	events := NewEventBus()
	collected := 0
	events.Subscribe(EventOrbCollected, func(Event) { collected++ })

	r := NewRocket(100, 100+OrbPickupRadius*0.5, 50)
	ob.Collect(r, pp, events)

	if ob.Orbs[0].Alive {
		t.Errorf("orb in reach should be collected")
	}
	if !ob.Orbs[1].Alive {
		t.Errorf("distant orb should survive")
	}
	if collected != 1 {
		t.Errorf("want one pickup event, got %d", collected)
	}
	if pp.Len() == 0 {
		t.Errorf("pickup should sparkle")
	}
	if got := ob.AliveCount(); got != 1 {
		t.Errorf("want 1 orb left, got %d", got)
	}

	// Collecting again in the same spot finds nothing new.
	ob.Collect(r, pp, events)
	if collected != 1 {
		t.Errorf("dead orb should not be collected twice")
	}
}

func TestOrbCollectNeedsLiveRocket(t *testing.T) {
	ob := NewOrbSystem(1)
	ob.Orbs = []Orb{{X: 100, Y: 100, Alive: true}}

	pp := NewParticlePool(64, DefaultPoolConfig(), 1)
	events := NewEventBus()

	ob.Collect(nil, pp, events)

	r := NewRocket(100, 100, 50)
	r.Alive = false
	ob.Collect(r, pp, events)

	if !ob.Orbs[0].Alive {
		t.Errorf("only a live rocket collects orbs")
	}
}

func TestOrbOutOfReach(t *testing.T) {
	ob := NewOrbSystem(1)
	ob.Orbs = []Orb{{X: 100, Y: 100, Alive: true}}

	pp := NewParticlePool(64, DefaultPoolConfig(), 1)
	events := NewEventBus()
	r := NewRocket(100, 100+OrbPickupRadius+0.5, 50)

	ob.Collect(r, pp, events)
	if !ob.Orbs[0].Alive {
		t.Errorf("orb just out of reach should not be collected")
	}
}

func TestOrbSpawnBlockedGroundStillPlacesOne(t *testing.T) {
	// A tree covering the plane rejects every candidate. Spawning must
	// still return, and with at least one orb or the level would
	// complete on its first frame.
	w := &World{Seed: 1}
	w.Flora = []Flora{{X: WorldWidth / 2, Y: WorldHeight / 2, Size: 500, Kind: FloraTree}}
	w.buildIndex()

	cs := NewCrystalSystem(1)
	ob := NewOrbSystem(1)
	ob.SpawnRandom(w, cs, 5)

	if got := ob.AliveCount(); got < 1 {
		t.Errorf("blocked ground must still place one orb, got %d", got)
	}
	if got := len(ob.Orbs); got > 5 {
		t.Errorf("fallback should not overshoot the request, got %d", got)
	}
}

func TestOrbSpawnAvoidsCrystals(t *testing.T) {
	w := NewWorld(13)
	cs := NewCrystalSystem(13)
	cs.SpawnRandom(w, 10)

	ob := NewOrbSystem(13)
	ob.SpawnRandom(w, cs, 8)

	if got := len(ob.Orbs); got == 0 || got > 8 {
		t.Fatalf("want up to 8 orbs, got %d", got)
	}
	for i, o := range ob.Orbs {
		for j := range cs.Crystals {
			c := &cs.Crystals[j]
			dx, dy := c.X-o.X, c.Y-o.Y
			min := c.R + OrbPickupRadius
			if dx*dx+dy*dy < min*min {
				t.Errorf("orb %d spawned inside crystal %d's reach", i, j)
			}
		}
	}
}
