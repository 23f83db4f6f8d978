package game

import "math"

const (
	DayCyclePeriod = 120.0 // seconds of game time per full day/night cycle
	SkyAmbientMin  = 0.34  // midnight ambient floor
	SkyAmbientMax  = 1.00  // noon ambient
	SkyNightStart  = 0.62  // ambient threshold where night glow kicks in
)

// SkyCycleLight computes ambient light level and colour tint from game time.
// Returns ambient (SkyAmbientMin..SkyAmbientMax) and tint RGB multipliers.
func SkyCycleLight(gameTime float64) (ambient, tintR, tintG, tintB float32) {
	phase := math.Mod(gameTime, DayCyclePeriod) / DayCyclePeriod // 0..1
	sunHeight := math.Sin(phase * 2 * math.Pi)                   // -1 (midnight) to 1 (noon)

	mid := float64(SkyAmbientMin+SkyAmbientMax) * 0.5
	amp := float64(SkyAmbientMax-SkyAmbientMin) * 0.5
	ambient = float32(mid + amp*sunHeight)

	// Warm tint near the horizon, cool blue-green at night to keep the
	// moss garden readable in the dark.
	horizonFactor := 1.0 - math.Abs(sunHeight)
	warmth := horizonFactor * horizonFactor * 0.30
	tintR = float32(1.0 + warmth*0.35)
	tintG = float32(1.0 - warmth*0.10)
	tintB = float32(1.0 - warmth*0.45)

	if sunHeight < -0.3 {
		nightFactor := float32((-sunHeight - 0.3) / 0.7)
		tintR -= nightFactor * 0.08
		tintG += nightFactor * 0.02
		tintB += nightFactor * 0.12
	}

	return
}

// NightIntensityFromAmbient maps ambient light to a 0..1 night factor.
// 0 at/above SkyNightStart, 1 at SkyAmbientMin. Drives orb and crystal
// glow brightness after dusk.
func NightIntensityFromAmbient(ambient float32) float32 {
	denom := float64(SkyNightStart - SkyAmbientMin)
	if denom <= 0 {
		return 0
	}
	return float32(clampF((float64(SkyNightStart)-float64(ambient))/denom, 0, 1))
}

// GroundColor blends the ground palette with the day phase.
func GroundColor(gameTime float64) RGB {
	ambient, _, _, _ := SkyCycleLight(gameTime)
	t := float64(NightIntensityFromAmbient(ambient))
	return lerpRGB(Palette.GroundDay, Palette.GroundNight, t)
}
