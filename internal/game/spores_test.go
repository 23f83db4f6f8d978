package game

import (
	"math"
	"testing"
)

func TestSporeSpawnDeterministic(t *testing.T) {
	a := NewSporeSystem(31)
	b := NewSporeSystem(31)
	a.SpawnRandom(6)
	b.SpawnRandom(6)

	if len(a.Clouds) != 6 || len(b.Clouds) != 6 {
		t.Fatalf("want 6 clouds each, got %d and %d", len(a.Clouds), len(b.Clouds))
	}
	for i := range a.Clouds {
		if a.Clouds[i] != b.Clouds[i] {
			t.Fatalf("cloud %d differs between identically seeded systems", i)
		}
	}
}

func TestSporeSpawnRanges(t *testing.T) {
	ss := NewSporeSystem(8)
	ss.SpawnRandom(10)
	for i, c := range ss.Clouds {
		if c.X < BorderMargin || c.X > WorldWidth-BorderMargin ||
			c.Y < BorderMargin || c.Y > WorldHeight-BorderMargin {
			t.Errorf("cloud %d spawns outside margins: (%v,%v)", i, c.X, c.Y)
		}
		if c.R < SporeMinRadius || c.R > SporeMaxRadius {
			t.Errorf("cloud %d radius %v outside configured range", i, c.R)
		}
		if c.VX == 0 && c.VY == 0 {
			t.Errorf("cloud %d has no drift", i)
		}
	}
}

func TestSporeDriftBouncesAtBorder(t *testing.T) {
	ss := NewSporeSystem(1)
	ss.Clouds = []SporeCloud{{X: BorderMargin + 1, Y: 100, Z: SporeAltitude, R: 4, VX: -50}}

	for i := 0; i < 20; i++ {
		ss.Update(0.1)
	}
	c := ss.Clouds[0]
	if c.X < BorderMargin {
		t.Errorf("cloud drifted past the border: %v", c.X)
	}
	if c.VX <= 0 {
		t.Errorf("border contact should reverse the drift, VX=%v", c.VX)
	}
}

func TestSporeWriteObstacles(t *testing.T) {
	ss := NewSporeSystem(1)
	ss.Clouds = []SporeCloud{
		{X: 40, Y: 40, Z: SporeAltitude, R: 5, Phase: 0},
		{X: 200, Y: 200, Z: SporeAltitude, R: 5, Phase: 0},
	}

	sb := NewSphereBuffer()
	n := ss.WriteObstacles(sb)
	if n != 2 {
		t.Fatalf("want 2 records, got %d", n)
	}

	// Hit at spore altitude, miss from ground level.
	if got := sb.Test(40, 40, float32(SporeAltitude), 0.5, n); got != 0 {
		t.Errorf("query at the cloud should hit record 0, got %d", got)
	}
	if got := sb.Test(40, 40, -20, 0.5, n); got != NoHit {
		t.Errorf("query far below should miss, got %d", got)
	}
	if got := sb.Test(200, 200, float32(SporeAltitude), 0.5, n); got != 1 {
		t.Errorf("second cloud should be record 1, got %d", got)
	}

	// Record radius pulses with the phase but stays near R.
	r0 := sb.Records()[3]
	if math.Abs(float64(r0)-5) > 5*0.1 {
		t.Errorf("pulsed radius %v strayed too far from base 5", r0)
	}
}
