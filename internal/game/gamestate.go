package game

type GameState int

const (
	StateMenu          GameState = iota
	StatePlaying                 // main gameplay
	StateLevelComplete           // all orbs collected
	StateLevelFailed             // rocket destroyed or out of fuel
)

type GameSession struct {
	State        GameState
	CurrentLevel int
	LevelTimer   float64
	Score        int
}

func NewGameSession() *GameSession {
	return &GameSession{State: StateMenu}
}

// StartLevel reseeds the garden and respawns every system for the level.
func (s *GameSession) StartLevel(level int, world *World, crystals *CrystalSystem, spores *SporeSystem, orbs *OrbSystem, rocket **Rocket, particles *ParticlePool, seed uint64) {
	s.CurrentLevel = level
	s.State = StatePlaying
	s.LevelTimer = 0

	cfg := GetLevelConfig(level)

	// Per-level mixed seed keeps retries of the same level identical but
	// distinct levels different.
	levelSeed := hash2D(seed^uint64(level)*0xA11CE5ED, level, 0)

	world.Seed = levelSeed
	world.Generate()

	crystals.Reset(levelSeed ^ 0xC4757A15EED)
	crystals.SpawnRandom(world, cfg.Crystals)

	spores.Reset(levelSeed ^ 0x5B05EED)
	spores.SpawnRandom(cfg.SporeClouds)

	orbs.Reset(levelSeed ^ 0x0B05EED)
	orbs.SpawnRandom(world, crystals, cfg.Orbs)

	particles.Clear()

	*rocket = NewRocket(float64(WorldWidth)/2, float64(WorldHeight)/2, cfg.Fuel)
}

// Update advances the level timer.
func (s *GameSession) Update(dt float64) {
	if s.State == StatePlaying {
		s.LevelTimer += dt
	}
}

// CheckLevelEnd checks win/lose. Losing is a dead rocket, or a dry tank
// once the rocket has coasted to a stop with orbs still out there.
func (s *GameSession) CheckLevelEnd(orbs *OrbSystem, rocket *Rocket, events *EventBus) {
	if s.State != StatePlaying {
		return
	}

	if rocket == nil || !rocket.Alive {
		s.State = StateLevelFailed
		return
	}

	if orbs.AliveCount() == 0 {
		s.State = StateLevelComplete
		s.Score += 100 * s.CurrentLevel
		events.Emit(Event{Type: EventLevelComplete, X: rocket.X, Y: rocket.Y, Magnitude: float64(s.CurrentLevel)})
		return
	}

	if rocket.Fuel <= 0 && rocket.Speed() < 1.0 {
		s.State = StateLevelFailed
	}
}
