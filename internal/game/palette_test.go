package game

import "testing"

func TestRGBMul(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	if got := c.Mul(255); got != c {
		t.Errorf("Mul(255) should be identity, got %v", got)
	}
	if got := c.Mul(0); got != (RGB{}) {
		t.Errorf("Mul(0) should be black, got %v", got)
	}
	half := c.Mul(127)
	if half.R > c.R/2+1 || half.R < c.R/2-1 {
		t.Errorf("Mul(127) should roughly halve: %v", half)
	}
}

func TestRGBAddClamps(t *testing.T) {
	c := RGB{R: 250, G: 10, B: 128}
	got := c.Add(30, -30, 0)
	if got.R != 255 {
		t.Errorf("red should clamp at 255, got %d", got.R)
	}
	if got.G != 0 {
		t.Errorf("green should clamp at 0, got %d", got.G)
	}
	if got.B != 128 {
		t.Errorf("blue should be unchanged, got %d", got.B)
	}
}
