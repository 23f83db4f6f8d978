package game

// Game-level burst recipes. All effects go through the pool's Emit so
// they share the same capacity and degrade together when the pool
// saturates.

// SpawnExplosion is the big rocket-crash effect: hot core, debris, smoke.
func SpawnExplosion(pp *ParticlePool, x, y, z, intensity float64) {
	if intensity <= 0 {
		return
	}
	pp.Emit(EmitParams{
		X: x, Y: y, Z: z, Col: Palette.ExhaustHot,
		Count: int(30 * intensity), Speed: 60 * intensity, Size: 1.4, Spread: 2.0,
	})
	pp.Emit(EmitParams{
		X: x, Y: y, Z: z, Col: Palette.Exhaust,
		Count: int(45 * intensity), Speed: 40 * intensity, Size: 1.1, Spread: 3.0,
	})
	pp.Emit(EmitParams{
		X: x, Y: y, Z: z, Col: Palette.Smoke,
		Count: int(25 * intensity), Speed: 14, Size: 1.8, Spread: 4.0,
	})
}

// SpawnShatter bursts crystal debris tinted from the crystal's own colour.
func SpawnShatter(pp *ParticlePool, x, y float64, col RGB, radius float64) {
	pp.Emit(EmitParams{
		X: x, Y: y, Z: 1.0, Col: col,
		Count: int(10 * radius), Speed: 35 + 6*radius, Size: 0.9, Spread: radius,
	})
	pp.Emit(EmitParams{
		X: x, Y: y, Z: 1.5, Col: Palette.CrystalGlint,
		Count: int(4 * radius), Speed: 50, Size: 0.6, Spread: radius * 0.5,
	})
}

// SpawnExhaust trails a few flakes behind a thrusting rocket.
func SpawnExhaust(pp *ParticlePool, x, y, z, backX, backY float64) {
	pp.Emit(EmitParams{
		X: x + backX, Y: y + backY, Z: z, Col: Palette.ExhaustHot,
		Count: 2, Speed: 18, Size: 0.7, Spread: 0.8,
	})
	pp.Emit(EmitParams{
		X: x + backX*1.6, Y: y + backY*1.6, Z: z, Col: Palette.Exhaust,
		Count: 1, Speed: 10, Size: 0.9, Spread: 1.2,
	})
}

// SpawnSporePuff marks a brush with a spore cloud.
func SpawnSporePuff(pp *ParticlePool, x, y, z float64) {
	pp.Emit(EmitParams{
		X: x, Y: y, Z: z, Col: Palette.Spore,
		Count: 12, Speed: 9, Size: 1.2, Spread: 3.0,
	})
}

// SpawnOrbSparkle celebrates an orb pickup.
func SpawnOrbSparkle(pp *ParticlePool, x, y float64) {
	pp.Emit(EmitParams{
		X: x, Y: y, Z: 2.0, Col: Palette.OrbCore,
		Count: 16, Speed: 26, Size: 0.8, Spread: 1.0,
	})
	pp.Emit(EmitParams{
		X: x, Y: y, Z: 2.0, Col: Palette.Orb,
		Count: 8, Speed: 16, Size: 1.0, Spread: 2.0,
	})
}
