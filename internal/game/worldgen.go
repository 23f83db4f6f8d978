package game

import (
	"math"

	"github.com/aquilax/go-perlin"
)

type FloraKind uint8

const (
	FloraTree FloraKind = iota
	FloraMoss
)

type Flora struct {
	X, Y float64
	Size float64
	Kind FloraKind
	Col  RGB
	Sway float64 // per-plant phase offset for wind sway
}

// World is the static garden: procedurally placed flora over a flat plane.
// The same seed always produces the same garden.
type World struct {
	Seed  uint64
	Flora []Flora

	quad *QuadNode

	// Scratch for view queries, reused across frames.
	visible []int
}

func NewWorld(seed uint64) *World {
	w := &World{Seed: seed}
	w.Generate()
	return w
}

// Generate places flora from layered Perlin noise. Trees grow where the
// noise ridge is strong, moss fills the mid band, bare ground elsewhere.
// Per-cell jitter comes from hash2D so placement stays deterministic.
func (w *World) Generate() {
	w.Flora = w.Flora[:0]
	p := perlin.NewPerlin(2, 2, 3, int64(w.Seed))

	// Only cells that fit entirely inside the plane grow anything, so
	// jittered placement can never leave the world rect.
	for cy := 0; cy+FloraCell <= WorldHeight; cy += FloraCell {
		for cx := 0; cx+FloraCell <= WorldWidth; cx += FloraCell {
			n := p.Noise2D(float64(cx)*FloraNoiseScale, float64(cy)*FloraNoiseScale)
			h := hash2D(w.Seed, cx, cy)
			r := NewRand(h)

			jx := float64(cx) + r.RangeF(1, FloraCell-1)
			jy := float64(cy) + r.RangeF(1, FloraCell-1)

			switch {
			case n > TreeThreshold:
				col := lerpRGB(Palette.TreeBase, Palette.TreeTop, r.Float64())
				w.Flora = append(w.Flora, Flora{
					X: jx, Y: jy,
					Size: r.RangeF(2.2, 4.5),
					Kind: FloraTree,
					Col:  col,
					Sway: r.RangeF(0, 2*math.Pi),
				})
			case n > MossThreshold:
				// Jelly-moss patches: a few small blobs per cell. Blob
				// offsets can cross the cell edge, so clamp them back in.
				blobs := r.Range(1, 3)
				for b := 0; b < blobs; b++ {
					w.Flora = append(w.Flora, Flora{
						X:    clampF(jx+r.RangeF(-3, 3), 1, WorldWidth-1),
						Y:    clampF(jy+r.RangeF(-3, 3), 1, WorldHeight-1),
						Size: r.RangeF(1.0, 2.2),
						Kind: FloraMoss,
						Col:  lerpRGB(Palette.MossDim, Palette.MossBright, r.Float64()),
						Sway: r.RangeF(0, 2*math.Pi),
					})
				}
			}
		}
	}

	w.buildIndex()
}

func (w *World) buildIndex() {
	w.quad = NewQuadNode(RectF{X0: 0, Y0: 0, X1: WorldWidth, Y1: WorldHeight}, 0)
	for i, f := range w.Flora {
		half := f.Size
		w.quad.Insert(i, RectF{X0: f.X - half, Y0: f.Y - half, X1: f.X + half, Y1: f.Y + half})
	}
}

// ClearOfFlora reports whether a disc is free of tree trunks. Used at
// spawn time so hazards and orbs don't materialize inside a tree.
func (w *World) ClearOfFlora(x, y, r float64) bool {
	w.visible = w.visible[:0]
	w.quad.Query(RectF{X0: x - r, Y0: y - r, X1: x + r, Y1: y + r}, &w.visible)
	for _, i := range w.visible {
		f := &w.Flora[i]
		if f.Kind != FloraTree {
			continue
		}
		dx := f.X - x
		dy := f.Y - y
		rr := f.Size + r
		if dx*dx+dy*dy < rr*rr {
			return false
		}
	}
	return true
}

// RenderData packs the flora visible inside the camera rect as point
// sprites, trees as stacked canopy discs, moss as soft low blobs. now
// drives a slow wind sway on the canopy tops.
func (w *World) RenderData(buf []float32, cam Camera, fbW, fbH int, now float64) []float32 {
	buf = buf[:0]

	halfW := float64(fbW) / (2.0 * cam.Zoom)
	halfH := float64(fbH) / (2.0 * cam.Zoom)
	view := RectF{X0: cam.X - halfW - 6, Y0: cam.Y - halfH - 6, X1: cam.X + halfW + 6, Y1: cam.Y + halfH + 6}

	w.visible = w.visible[:0]
	w.quad.Query(view, &w.visible)

	for _, i := range w.visible {
		f := &w.Flora[i]
		switch f.Kind {
		case FloraTree:
			sway := math.Sin(now*0.8+f.Sway) * 0.35
			base := Palette.TreeBase
			mid := lerpRGB(Palette.TreeMid, f.Col, 0.5)
			buf = append(buf,
				float32(f.X), float32(f.Y), float32(f.Size*1.15),
				float32(base.R)/255, float32(base.G)/255, float32(base.B)/255, 1, 0,
			)
			buf = append(buf,
				float32(f.X+sway*0.5), float32(f.Y-f.Size*0.25), float32(f.Size*0.85),
				float32(mid.R)/255, float32(mid.G)/255, float32(mid.B)/255, 1, 0,
			)
			buf = append(buf,
				float32(f.X+sway), float32(f.Y-f.Size*0.5), float32(f.Size*0.55),
				float32(f.Col.R)/255, float32(f.Col.G)/255, float32(f.Col.B)/255, 1, 0,
			)
		case FloraMoss:
			// Jelly-moss pulses gently.
			pulse := 1.0 + 0.08*math.Sin(now*1.6+f.Sway)
			buf = append(buf,
				float32(f.X), float32(f.Y), float32(f.Size*pulse),
				float32(f.Col.R)/255, float32(f.Col.G)/255, float32(f.Col.B)/255, 0.9, 0,
			)
		}
	}
	return buf
}
