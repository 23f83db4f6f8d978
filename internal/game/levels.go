package game

type LevelConfig struct {
	Crystals    int
	SporeClouds int
	Orbs        int
	Fuel        float64
}

// GetLevelConfig returns settings for a given level.
// Levels 1–8 are hand-crafted; beyond that the garden gets denser
// procedurally while the fuel allowance tightens toward a floor.
func GetLevelConfig(level int) LevelConfig {
	switch level {
	case 1:
		// Gentle meadow — sparse crystals, generous fuel.
		return LevelConfig{Crystals: 6, SporeClouds: 1, Orbs: 4, Fuel: RocketMaxFuel}
	case 2:
		// First spore drifts appear.
		return LevelConfig{Crystals: 9, SporeClouds: 2, Orbs: 5, Fuel: RocketMaxFuel}
	case 3:
		// Crystal field thickens.
		return LevelConfig{Crystals: 14, SporeClouds: 3, Orbs: 5, Fuel: 90}
	case 4:
		// Spore season — clouds outnumber safe lanes.
		return LevelConfig{Crystals: 14, SporeClouds: 6, Orbs: 6, Fuel: 90}
	case 5:
		// Shard maze.
		return LevelConfig{Crystals: 20, SporeClouds: 5, Orbs: 7, Fuel: 85}
	case 6:
		// Long haul — many orbs, tight fuel.
		return LevelConfig{Crystals: 18, SporeClouds: 6, Orbs: 9, Fuel: 80}
	case 7:
		// Dense grove.
		return LevelConfig{Crystals: 24, SporeClouds: 8, Orbs: 9, Fuel: 80}
	case 8:
		// Crystal storm.
		return LevelConfig{Crystals: 30, SporeClouds: 9, Orbs: 10, Fuel: 75}
	default:
		// Levels 9+ scale pressure; fuel never drops below 60.
		extra := level - 8
		fuel := 75.0 - float64(extra)*2.0
		if fuel < 60 {
			fuel = 60
		}
		return LevelConfig{
			Crystals:    30 + extra*4,
			SporeClouds: 9 + extra,
			Orbs:        10 + extra/2,
			Fuel:        fuel,
		}
	}
}
