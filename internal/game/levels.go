package game

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/turkey-shoot/internal/config"
)

// LevelManager owns level progression: which enemy kinds are in play,
// how many enemies a level fields, their speed scaling, and the timed
// spawn stream for the current level.
type LevelManager struct {
	cfg        config.LevelsConfig
	difficulty config.DifficultySettings
	cat        *Catalog
	rng        *rand.Rand

	level       int
	spawned     int
	target      int
	lastSpawn   int64
	bossSpawned bool
}

// NewLevelManager creates a manager starting at level 1.
func NewLevelManager(cfg config.LevelsConfig, difficulty config.DifficultySettings, cat *Catalog, rng *rand.Rand) *LevelManager {
	return &LevelManager{
		cfg:        cfg,
		difficulty: difficulty,
		cat:        cat,
		rng:        rng,
		level:      1,
	}
}

// CurrentLevel returns the 1-based level number.
func (lm *LevelManager) CurrentLevel() int {
	return lm.level
}

// IsBossLevel reports whether the current level is a boss level.
func (lm *LevelManager) IsBossLevel() bool {
	return lm.level%lm.cfg.BossInterval == 0
}

// AvailableKinds returns the sorted enemy kinds unlocked at the current
// level, excluding the boss kind on regular levels. If the exclusion
// leaves nothing, the boss kind is used as a fallback so a level can
// always spawn.
func (lm *LevelManager) AvailableKinds() []string {
	seen := make(map[string]bool)
	for threshold, kinds := range lm.cfg.Unlocks {
		if threshold > lm.level {
			continue
		}
		for _, k := range kinds {
			if _, ok := lm.cat.Enemies[k]; ok {
				seen[k] = true
			}
		}
	}
	if !lm.IsBossLevel() {
		delete(seen, lm.cfg.Boss)
	}
	if len(seen) == 0 {
		return []string{lm.cfg.Boss}
	}

	kinds := make([]string, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// SpeedMultiplier returns the combined difficulty and level speed
// scaling. The level bump applies once per SpeedStepLevels completed.
func (lm *LevelManager) SpeedMultiplier() float64 {
	steps := (lm.level - 1) / lm.cfg.SpeedStepLevels
	return lm.difficulty.SpeedMultiplier * (1 + float64(steps)*lm.cfg.SpeedIncrease)
}

// EnemiesForLevel returns how many enemies the current level fields.
// Boss levels halve the roster, plus the boss itself.
func (lm *LevelManager) EnemiesForLevel() int {
	count := int(float64(lm.cfg.BaseEnemyCount) *
		(1 + float64(lm.level-1)*lm.cfg.EnemyIncrease) *
		lm.difficulty.EnemyCountMultiplier)
	if count < lm.cfg.MinEnemies {
		count = lm.cfg.MinEnemies
	}
	if lm.IsBossLevel() {
		count = count/2 + 1
	}
	return count
}

// StartLevel arms the spawn stream for the current level. The first
// enemy appears one spawn interval after now.
func (lm *LevelManager) StartLevel(now int64) {
	lm.spawned = 0
	lm.target = lm.EnemiesForLevel()
	lm.lastSpawn = now
	lm.bossSpawned = false
}

// SpawnNext emits the next enemy of the level, or nil if the spawn
// interval has not elapsed or the level's roster is exhausted. On a
// boss level the boss spawns first; the rest of the roster comes from
// the regular pool. slowMult folds an active slow-enemies effect into
// the spawn-time speed.
func (lm *LevelManager) SpawnNext(now int64, slowMult, screenW, margin float64) *Enemy {
	if lm.spawned >= lm.target {
		return nil
	}
	if now-lm.lastSpawn < lm.difficulty.SpawnIntervalMs {
		return nil
	}

	var kind string
	if lm.IsBossLevel() && !lm.bossSpawned {
		kind = lm.cfg.Boss
		lm.bossSpawned = true
	} else {
		pool := lm.AvailableKinds()
		if lm.IsBossLevel() {
			// Boss already out; spawn the rest from the regular pool.
			regular := pool[:0]
			for _, k := range pool {
				if k != lm.cfg.Boss {
					regular = append(regular, k)
				}
			}
			pool = regular
		}
		if len(pool) == 0 {
			pool = []string{lm.cfg.Boss}
		}
		kind = pool[lm.rng.Intn(len(pool))]
	}

	spec, ok := lm.cat.Enemies[kind]
	if !ok {
		return nil
	}

	lm.spawned++
	lm.lastSpawn = now
	return NewEnemy(spec, lm.cat, lm.rng, screenW, margin, lm.SpeedMultiplier()*slowMult)
}

// IsComplete reports whether the level is over: the full roster has
// spawned and no enemies remain active.
func (lm *LevelManager) IsComplete(activeCount int) bool {
	return lm.spawned >= lm.target && activeCount == 0
}

// Advance moves to the next level. StartLevel must be called before
// spawning resumes.
func (lm *LevelManager) Advance() {
	lm.level++
}

// Reset returns the manager to level 1.
func (lm *LevelManager) Reset() {
	lm.level = 1
	lm.spawned = 0
	lm.target = 0
	lm.lastSpawn = 0
	lm.bossSpawned = false
}

// Spawned returns how many enemies have spawned this level.
func (lm *LevelManager) Spawned() int {
	return lm.spawned
}

// Target returns the level's total roster size.
func (lm *LevelManager) Target() int {
	return lm.target
}
