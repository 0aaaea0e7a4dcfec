package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/turkey-shoot/internal/config"
)

func testLevelManager(t *testing.T, difficulty string) *LevelManager {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	cat, err := BuildCatalog(cfg)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	return NewLevelManager(cfg.Levels, cfg.Difficulty[difficulty], cat, rng)
}

func TestEnemiesForLevel(t *testing.T) {
	tests := []struct {
		difficulty string
		level      int
		want       int
	}{
		{"easy", 1, 10},   // 10 * 1.0 * 1.0
		{"easy", 2, 13},   // 10 * 1.35
		{"easy", 3, 17},   // 10 * 1.70
		{"medium", 1, 12}, // 10 * 1.0 * 1.2
		{"hard", 1, 14},   // 10 * 1.0 * 1.4
		{"easy", 5, 13},   // boss level: 24/2 + 1
	}

	for _, tt := range tests {
		lm := testLevelManager(t, tt.difficulty)
		for lm.CurrentLevel() < tt.level {
			lm.Advance()
		}
		if got := lm.EnemiesForLevel(); got != tt.want {
			t.Errorf("%s level %d: enemies = %d, want %d", tt.difficulty, tt.level, got, tt.want)
		}
	}
}

func TestSpeedMultiplierSteps(t *testing.T) {
	tests := []struct {
		difficulty string
		level      int
		want       float64
	}{
		{"easy", 1, 1.0},
		{"easy", 3, 1.0},
		{"easy", 4, 1.2}, // One step completed
		{"easy", 7, 1.4},
		{"medium", 1, 1.5},
		{"medium", 4, 1.8}, // 1.5 * 1.2
		{"hard", 1, 2.0},
	}

	for _, tt := range tests {
		lm := testLevelManager(t, tt.difficulty)
		for lm.CurrentLevel() < tt.level {
			lm.Advance()
		}
		if got := lm.SpeedMultiplier(); !almostEqual(got, tt.want) {
			t.Errorf("%s level %d: speed = %v, want %v", tt.difficulty, tt.level, got, tt.want)
		}
	}
}

func TestAvailableKinds(t *testing.T) {
	tests := []struct {
		level int
		want  []string
	}{
		{1, []string{"cranberry"}}, // turkey is the boss, excluded off boss levels
		{2, []string{"cranberry", "pumpkin_pie"}},
		{4, []string{"cranberry", "pumpkin_pie", "stuffing"}},
		{5, []string{"cranberry", "gravy_boat", "pumpkin_pie", "stuffing", "turkey"}}, // boss level includes boss
		{6, []string{"cranberry", "gravy_boat", "mashed_potato", "pumpkin_pie", "stuffing"}},
		{8, []string{"cranberry", "gravy_boat", "green_bean_casserole", "mashed_potato", "pumpkin_pie", "stuffing"}},
	}

	for _, tt := range tests {
		lm := testLevelManager(t, "easy")
		for lm.CurrentLevel() < tt.level {
			lm.Advance()
		}
		got := lm.AvailableKinds()
		if len(got) != len(tt.want) {
			t.Errorf("level %d: kinds = %v, want %v", tt.level, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("level %d: kinds = %v, want %v", tt.level, got, tt.want)
				break
			}
		}
	}
}

func TestBossLevelDetection(t *testing.T) {
	lm := testLevelManager(t, "easy")
	for level := 1; level <= 20; level++ {
		want := level%5 == 0
		if got := lm.IsBossLevel(); got != want {
			t.Errorf("level %d: IsBossLevel = %v, want %v", level, got, want)
		}
		lm.Advance()
	}
}

func TestBossSpawnsFirst(t *testing.T) {
	lm := testLevelManager(t, "easy")
	for lm.CurrentLevel() < 5 {
		lm.Advance()
	}
	lm.StartLevel(0)

	var spawned []*Enemy
	now := int64(0)
	for lm.Spawned() < lm.Target() {
		now += 1250
		if e := lm.SpawnNext(now, 1, 80, 5); e != nil {
			spawned = append(spawned, e)
		}
	}

	if len(spawned) == 0 {
		t.Fatal("nothing spawned")
	}
	if spawned[0].Spec.Kind != "turkey" {
		t.Errorf("first spawn = %q, want turkey", spawned[0].Spec.Kind)
	}
	for _, e := range spawned[1:] {
		if e.Spec.Kind == "turkey" {
			t.Error("boss spawned twice")
		}
	}
}

func TestSpawnRespectsInterval(t *testing.T) {
	lm := testLevelManager(t, "easy")
	lm.StartLevel(0)

	if e := lm.SpawnNext(1249, 1, 80, 5); e != nil {
		t.Error("spawned before the interval elapsed")
	}
	if e := lm.SpawnNext(1250, 1, 80, 5); e == nil {
		t.Error("did not spawn once the interval elapsed")
	}
	// Interval restarts from the last spawn.
	if e := lm.SpawnNext(1251, 1, 80, 5); e != nil {
		t.Error("spawned immediately after a spawn")
	}
}

func TestSpawnStopsAtTarget(t *testing.T) {
	lm := testLevelManager(t, "easy")
	lm.StartLevel(0)

	now := int64(0)
	count := 0
	for i := 0; i < 100; i++ {
		now += 1250
		if e := lm.SpawnNext(now, 1, 80, 5); e != nil {
			count++
		}
	}
	if count != lm.Target() {
		t.Errorf("spawned %d, want %d", count, lm.Target())
	}
}

func TestSlowMultiplierAppliedAtSpawn(t *testing.T) {
	lm := testLevelManager(t, "easy")
	lm.StartLevel(0)

	e := lm.SpawnNext(1250, 0.5, 80, 5)
	if e == nil {
		t.Fatal("no spawn")
	}
	if !almostEqual(e.Speed, e.Spec.Speed*0.5) {
		t.Errorf("speed = %v, want %v", e.Speed, e.Spec.Speed*0.5)
	}
}

func TestIsComplete(t *testing.T) {
	lm := testLevelManager(t, "easy")
	lm.StartLevel(0)

	if lm.IsComplete(0) {
		t.Error("complete before anything spawned")
	}

	now := int64(0)
	for lm.Spawned() < lm.Target() {
		now += 1250
		lm.SpawnNext(now, 1, 80, 5)
	}

	if lm.IsComplete(3) {
		t.Error("complete with enemies still active")
	}
	if !lm.IsComplete(0) {
		t.Error("not complete with roster exhausted and field clear")
	}
}
