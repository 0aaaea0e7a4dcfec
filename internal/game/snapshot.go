package game

// Snapshot is a read-only view of the live simulation for inspection
// and testing. It copies values; mutating a Snapshot has no effect on
// the game.
type Snapshot struct {
	State      string
	Difficulty string
	Score      int
	Lives      int
	Level      int

	PlayerX float64
	PlayerY float64

	Bullets  []EntitySnapshot
	Enemies  []EnemySnapshot
	PowerUps []EntitySnapshot

	SlowActive   bool
	LevelSpawned int
	LevelTarget  int
}

// EntitySnapshot is one bullet or pickup.
type EntitySnapshot struct {
	Kind string // Empty for bullets
	X, Y float64
}

// EnemySnapshot is one live enemy.
type EnemySnapshot struct {
	Kind   string
	X, Y   float64
	Health int
	Speed  float64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:      g.state,
		Difficulty: g.difficulty,
		Score:      g.score,
		Lives:      g.lives,
		SlowActive: g.slowUntil > 0,
	}
	if g.levels != nil {
		s.Level = g.levels.CurrentLevel()
		s.LevelSpawned = g.levels.Spawned()
		s.LevelTarget = g.levels.Target()
	}
	if g.player != nil {
		s.PlayerX = g.player.X
		s.PlayerY = g.player.Y
	}
	for _, b := range g.bullets {
		if b.Active {
			s.Bullets = append(s.Bullets, EntitySnapshot{X: b.X, Y: b.Y})
		}
	}
	for _, e := range g.enemies {
		if e.Active {
			s.Enemies = append(s.Enemies, EnemySnapshot{
				Kind:   e.Spec.Kind,
				X:      e.X,
				Y:      e.Y,
				Health: e.Health,
				Speed:  e.Speed,
			})
		}
	}
	for _, p := range g.powerups {
		if p.Active {
			s.PowerUps = append(s.PowerUps, EntitySnapshot{Kind: p.Spec.Kind, X: p.X, Y: p.Y})
		}
	}
	return s
}
