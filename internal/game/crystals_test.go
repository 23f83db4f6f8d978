package game

import "testing"

func TestCrystalSpawnRespectsWorld(t *testing.T) {
	w := NewWorld(42)
	cs := NewCrystalSystem(42)
	cs.SpawnRandom(w, 12)

	if got := len(cs.Crystals); got == 0 || got > 12 {
		t.Fatalf("want up to 12 crystals, got %d", got)
	}
	for i, c := range cs.Crystals {
		if !c.Alive {
			t.Errorf("crystal %d spawned dead", i)
		}
		if c.X < BorderMargin || c.X > WorldWidth-BorderMargin ||
			c.Y < BorderMargin || c.Y > WorldHeight-BorderMargin {
			t.Errorf("crystal %d at (%v,%v) outside spawn margins", i, c.X, c.Y)
		}
		if c.R < CrystalMinRadius || c.R > CrystalMaxRadius {
			t.Errorf("crystal %d radius %v outside configured range", i, c.R)
		}
	}
}

func TestCrystalSpawnGivesUpOnBlockedGround(t *testing.T) {
	// One tree covering the whole plane rejects every candidate; the
	// attempt cap must end the loop instead of spinning forever.
	w := &World{Seed: 1}
	w.Flora = []Flora{{X: WorldWidth / 2, Y: WorldHeight / 2, Size: 500, Kind: FloraTree}}
	w.buildIndex()

	cs := NewCrystalSystem(1)
	cs.SpawnRandom(w, 20)
	if got := len(cs.Crystals); got != 0 {
		t.Errorf("fully blocked ground should grow nothing, got %d", got)
	}
}

func TestCrystalWriteObstaclesSpawnOrder(t *testing.T) {
	cs := NewCrystalSystem(1)
	cs.Crystals = []Crystal{
		{X: 10, Y: 10, R: 2, Alive: true},
		{X: 20, Y: 20, R: 3, Alive: true},
		{X: 30, Y: 30, R: 4, Alive: true},
	}

	cb := NewCircleBuffer()
	n := cs.WriteObstacles(cb)
	if n != 3 {
		t.Fatalf("want 3 records, got %d", n)
	}
	if got := cb.Test(20, 20, 0.5, n); got != 1 {
		t.Errorf("middle crystal should be record 1, got %d", got)
	}

	// Killing the first crystal shifts later records down.
	cs.Crystals[0].Alive = false
	n = cs.WriteObstacles(cb)
	if n != 2 {
		t.Fatalf("want 2 records after a kill, got %d", n)
	}
	if got := cb.Test(20, 20, 0.5, n); got != 0 {
		t.Errorf("middle crystal should now be record 0, got %d", got)
	}
	if got := cb.Test(10, 10, 0.5, n); got != NoHit {
		t.Errorf("dead crystal should not be queryable, got %d", got)
	}
}

func TestCrystalLiveIndex(t *testing.T) {
	cs := NewCrystalSystem(1)
	cs.Crystals = []Crystal{
		{Alive: false},
		{Alive: true},
		{Alive: false},
		{Alive: true},
	}

	if got := cs.LiveIndex(0); got != 1 {
		t.Errorf("record 0 should map to crystal 1, got %d", got)
	}
	if got := cs.LiveIndex(1); got != 3 {
		t.Errorf("record 1 should map to crystal 3, got %d", got)
	}
	if got := cs.LiveIndex(2); got != -1 {
		t.Errorf("out-of-range record should map to -1, got %d", got)
	}
	if got := cs.LiveIndex(-5); got != -1 {
		t.Errorf("negative record should map to -1, got %d", got)
	}
}

func TestCrystalShatter(t *testing.T) {
	cs := NewCrystalSystem(1)
	cs.Crystals = []Crystal{{X: 50, Y: 60, R: 3, Col: Palette.CrystalCore, Alive: true}}

	pp := NewParticlePool(256, DefaultPoolConfig(), 1)
	events := NewEventBus()
	var got []Event
	events.Subscribe(EventCrystalShattered, func(e Event) { got = append(got, e) })

	cs.Shatter(0, pp, events)

	if cs.Crystals[0].Alive {
		t.Errorf("shattered crystal should be dead")
	}
	if pp.Len() == 0 {
		t.Errorf("shatter should burst debris particles")
	}
	if len(got) != 1 {
		t.Fatalf("want one shatter event, got %d", len(got))
	}
	if got[0].X != 50 || got[0].Y != 60 || got[0].Magnitude != 3 {
		t.Errorf("event carries wrong location: %+v", got[0])
	}

	// Shattering again is a no-op.
	before := pp.Len()
	cs.Shatter(0, pp, events)
	if len(got) != 1 || pp.Len() != before {
		t.Errorf("double shatter should do nothing")
	}
	cs.Shatter(99, pp, events)
	if len(got) != 1 {
		t.Errorf("out-of-range shatter should do nothing")
	}
}
