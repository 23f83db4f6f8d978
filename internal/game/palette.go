package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	GroundDay    RGB
	GroundNight  RGB
	MossDim      RGB
	MossBright   RGB
	TreeBase     RGB
	TreeMid      RGB
	TreeTop      RGB
	CrystalCore  RGB
	CrystalEdge  RGB
	CrystalGlint RGB
	Spore        RGB
	SporeCore    RGB
	Orb          RGB
	OrbCore      RGB
	RocketBody   RGB
	RocketNose   RGB
	Exhaust      RGB
	ExhaustHot   RGB
	Debris       RGB
	Smoke        RGB
	Glow         RGB
}{
	GroundDay:    RGB{R: 52, G: 84, B: 66},
	GroundNight:  RGB{R: 18, G: 26, B: 38},
	MossDim:      RGB{R: 58, G: 112, B: 74},
	MossBright:   RGB{R: 92, G: 160, B: 104},
	TreeBase:     RGB{R: 70, G: 95, B: 50},
	TreeMid:      RGB{R: 90, G: 120, B: 65},
	TreeTop:      RGB{R: 120, G: 150, B: 85},
	CrystalCore:  RGB{R: 150, G: 90, B: 210},
	CrystalEdge:  RGB{R: 110, G: 60, B: 170},
	CrystalGlint: RGB{R: 235, G: 205, B: 255},
	Spore:        RGB{R: 180, G: 200, B: 120},
	SporeCore:    RGB{R: 210, G: 225, B: 150},
	Orb:          RGB{R: 90, G: 205, B: 235},
	OrbCore:      RGB{R: 200, G: 245, B: 255},
	RocketBody:   RGB{R: 220, G: 222, B: 228},
	RocketNose:   RGB{R: 230, G: 90, B: 60},
	Exhaust:      RGB{R: 255, G: 150, B: 70},
	ExhaustHot:   RGB{R: 255, G: 220, B: 140},
	Debris:       RGB{R: 140, G: 110, B: 190},
	Smoke:        RGB{R: 120, G: 120, B: 125},
	Glow:         RGB{R: 255, G: 200, B: 90},
}
