package game

import (
	"math"
	"testing"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(77)
	b := NewRand(77)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 && r.NextU64() == 0 {
		t.Errorf("zero seed should be remapped, not stuck at zero")
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRand(12345)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) out of range: %d", v)
		}
		if v := r.Range(3, 9); v < 3 || v > 9 {
			t.Fatalf("Range(3,9) out of range: %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
		if v := r.RangeF(-2, 2); v < -2 || v >= 2 {
			t.Fatalf("RangeF(-2,2) out of range: %v", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Errorf("Intn(0) should return 0")
	}
	if r.RangeF(5, 5) != 5 {
		t.Errorf("degenerate RangeF should return min")
	}
}

func TestHash2DStable(t *testing.T) {
	if hash2D(1, 10, 20) != hash2D(1, 10, 20) {
		t.Errorf("hash2D is not deterministic")
	}
	if hash2D(1, 10, 20) == hash2D(1, 20, 10) {
		t.Errorf("hash2D should not be symmetric in x and y")
	}
	if hash2D(1, 10, 20) == hash2D(2, 10, 20) {
		t.Errorf("hash2D should depend on the seed")
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 10) != 5 || clamp(-1, 0, 10) != 0 || clamp(11, 0, 10) != 10 {
		t.Errorf("clamp misbehaves")
	}
	if clampF(0.5, 0, 1) != 0.5 || clampF(-3, 0, 1) != 0 || clampF(3, 0, 1) != 1 {
		t.Errorf("clampF misbehaves")
	}
}

func TestApproach(t *testing.T) {
	if got := approach(0, 10, 3); got != 3 {
		t.Errorf("approach up: want 3, got %v", got)
	}
	if got := approach(10, 0, 3); got != 7 {
		t.Errorf("approach down: want 7, got %v", got)
	}
	if got := approach(9, 10, 3); got != 10 {
		t.Errorf("approach should not overshoot: got %v", got)
	}
	if got := approach(10, 10, 3); got != 10 {
		t.Errorf("approach at target should stay: got %v", got)
	}
}

func TestAngDiffWraps(t *testing.T) {
	const eps = 1e-9
	if d := angDiff(0, math.Pi/2); math.Abs(d-math.Pi/2) > eps {
		t.Errorf("quarter turn: got %v", d)
	}
	// Crossing the -pi/pi seam should give the short way round.
	if d := angDiff(math.Pi-0.1, -math.Pi+0.1); math.Abs(d-0.2) > eps {
		t.Errorf("seam crossing: want 0.2, got %v", d)
	}
	if d := angDiff(0, 2*math.Pi); math.Abs(d) > eps {
		t.Errorf("full turn should be zero: got %v", d)
	}
	if d := angDiff(0, 3*math.Pi/2); math.Abs(d+math.Pi/2) > eps {
		t.Errorf("three quarters should wrap to -pi/2: got %v", d)
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 100, B: 0}
	if got := lerpRGB(a, b, 0); got != a {
		t.Errorf("t=0 should return a, got %v", got)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Errorf("t=1 should return b, got %v", got)
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 100 || mid.G != 100 || mid.B != 100 {
		t.Errorf("midpoint off: %v", mid)
	}
	if got := lerpRGB(a, b, -1); got != a {
		t.Errorf("t<0 should clamp to a, got %v", got)
	}
}
