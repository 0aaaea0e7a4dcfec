package game

import (
	"testing"

	"github.com/vovakirdan/turkey-shoot/internal/core"
)

// fakeStore is an in-memory ScoreStore for tests.
type fakeStore struct {
	qualify bool
	saved   []ScoreEntry
	savedAt []string
}

func (f *fakeStore) IsHighScore(score int, difficulty string) bool {
	return f.qualify
}

func (f *fakeStore) AddHighScore(name string, score int, difficulty string, level int) error {
	f.saved = append(f.saved, ScoreEntry{Name: name, Score: score, Level: level})
	f.savedAt = append(f.savedAt, difficulty)
	return nil
}

func (f *fakeStore) HighScores(difficulty string) []ScoreEntry {
	return f.saved
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func frame(now int64, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Now = now
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startPlaying drives the menu to start a run on the given difficulty.
func startPlaying(t *testing.T, g *Game, difficulty string) {
	t.Helper()
	for i, item := range g.MenuItems() {
		if item == difficulty {
			for j := 0; j < i; j++ {
				g.Step(frame(0, core.ActionDown))
			}
			g.Step(frame(0, core.ActionConfirm))
			if g.State().State != StatePlaying {
				t.Fatalf("state = %q after selecting %q, want playing", g.State().State, difficulty)
			}
			return
		}
	}
	t.Fatalf("difficulty %q not in menu", difficulty)
}

func TestMenuStartsRun(t *testing.T) {
	g := newTestGame(t)

	if g.State().State != StateMenu {
		t.Fatalf("initial state = %q, want menu", g.State().State)
	}

	startPlaying(t, g, "hard")

	st := g.State()
	if st.Lives != 2 {
		t.Errorf("hard lives = %d, want 2", st.Lives)
	}
	if st.Level != 1 {
		t.Errorf("level = %d, want 1", st.Level)
	}
	if g.Difficulty() != "hard" {
		t.Errorf("difficulty = %q, want hard", g.Difficulty())
	}
}

func TestMenuOpensHighScores(t *testing.T) {
	g := newTestGame(t)
	g.SetStore(&fakeStore{})

	items := g.MenuItems()
	for i := 0; i < len(items)-1; i++ {
		g.Step(frame(0, core.ActionDown))
	}
	g.Step(frame(0, core.ActionConfirm))

	if g.State().State != StateHighScores {
		t.Fatalf("state = %q, want high_scores", g.State().State)
	}

	g.Step(frame(0, core.ActionBack))
	if g.State().State != StateMenu {
		t.Errorf("state = %q after back, want menu", g.State().State)
	}
}

func TestDifficultyPresetSkipsMenu(t *testing.T) {
	SetDifficultyPreset("medium")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(frame(0))

	st := g.State()
	if st.State != StatePlaying {
		t.Fatalf("state = %q, want playing", st.State)
	}
	if st.Lives != 3 {
		t.Errorf("medium lives = %d, want 3", st.Lives)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	g.Step(frame(100, core.ActionPause))
	if !g.State().Paused {
		t.Fatal("not paused")
	}

	// A long pause must not consume the spawn interval.
	g.Step(frame(60100, core.ActionPause))
	if g.State().Paused {
		t.Fatal("still paused after toggle")
	}
	g.Step(frame(60110))
	if len(g.Snapshot().Enemies) != 0 {
		t.Error("enemy spawned from time spent paused")
	}
}

func TestSpawnAfterInterval(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	g.Step(frame(1000))
	if n := len(g.Snapshot().Enemies); n != 0 {
		t.Fatalf("enemies at 1000ms = %d, want 0", n)
	}
	g.Step(frame(1300))
	if n := len(g.Snapshot().Enemies); n != 1 {
		t.Fatalf("enemies at 1300ms = %d, want 1", n)
	}
}

func TestShootingProducesBullet(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	g.Step(frame(10, core.ActionFire))
	if n := len(g.Snapshot().Bullets); n != 1 {
		t.Fatalf("bullets = %d, want 1", n)
	}

	// Within the 175ms cooldown.
	g.Step(frame(100, core.ActionFire))
	if n := len(g.Snapshot().Bullets); n != 1 {
		t.Errorf("bullets = %d, cooldown ignored", n)
	}

	g.Step(frame(200, core.ActionFire))
	if n := len(g.Snapshot().Bullets); n != 2 {
		t.Errorf("bullets = %d, want 2 after cooldown", n)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	now := int64(0)
	for i := 0; i < 10000; i++ {
		now += 10
		g.Step(frame(now, core.ActionLeft))
		if x := g.Snapshot().PlayerX; x < 0 {
			t.Fatalf("player left of screen: %v", x)
		}
	}
	if x := g.Snapshot().PlayerX; x != 0 {
		t.Errorf("player x = %v after holding left, want 0", x)
	}
}

func TestExtraLifePickup(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	before := g.State().Lives
	g.applyPowerUp(g.cat.PowerUps["extra_life"], 0)
	if got := g.State().Lives; got != before+1 {
		t.Errorf("lives = %d, want %d", got, before+1)
	}
}

func TestSlowEnemiesRetroactive(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	spec := g.cat.Enemies["cranberry"]
	e := makeEnemy(10, 5, spec)
	g.enemies = append(g.enemies, e)
	baseSpeed := e.Speed

	g.applyPowerUp(g.cat.PowerUps["slow_enemies"], 1000)
	if !almostEqual(e.Speed, baseSpeed*0.5) {
		t.Errorf("speed = %v, want %v", e.Speed, baseSpeed*0.5)
	}

	// Re-pickup refreshes the timer but never scales twice.
	g.applyPowerUp(g.cat.PowerUps["slow_enemies"], 5000)
	if !almostEqual(e.Speed, baseSpeed*0.5) {
		t.Errorf("speed after re-pickup = %v, want %v", e.Speed, baseSpeed*0.5)
	}
	if g.slowUntil != 15000 {
		t.Errorf("slowUntil = %d, want 15000", g.slowUntil)
	}

	// Expiry disarms the global multiplier but leaves on-screen enemies
	// at their reduced speed.
	g.expireSlow(15000)
	if g.slowUntil != 0 || g.slowMultiplier != 1 {
		t.Errorf("slow still armed: until=%d mult=%v", g.slowUntil, g.slowMultiplier)
	}
	if !almostEqual(e.Speed, baseSpeed*0.5) {
		t.Errorf("speed after expiry = %v, want %v", e.Speed, baseSpeed*0.5)
	}
}

func TestLifeLossClearsEffectsButNotSlow(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	g.applyPowerUp(g.cat.PowerUps["fire_rate"], 0)
	g.applyPowerUp(g.cat.PowerUps["slow_enemies"], 0)
	if !g.player.Effects.Active(EffectFireRate) {
		t.Fatal("fire rate not applied")
	}

	g.loseLife()

	if g.player.Effects.Active(EffectFireRate) {
		t.Error("fire rate survived life loss")
	}
	if g.slowUntil == 0 {
		t.Error("global slow cleared by life loss")
	}
	if g.State().Lives != 4 {
		t.Errorf("lives = %d, want 4", g.State().Lives)
	}
}

func TestEscapeCostsOneLife(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	spec := g.cat.Enemies["cranberry"]
	g.enemies = append(g.enemies, makeEnemy(10, 30, spec), makeEnemy(20, 30, spec))

	before := g.State().Lives
	g.Step(frame(10))
	if got := g.State().Lives; got != before-1 {
		t.Errorf("lives = %d, want %d (one loss for any number of escapes)", got, before-1)
	}
	if n := len(g.Snapshot().Enemies); n != 0 {
		t.Errorf("escaped enemies still tracked: %d", n)
	}
}

func TestGameOverWithoutStore(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "hard")

	g.loseLife()
	g.loseLife()

	if st := g.State(); st.State != StateGameOver || !st.GameOver {
		t.Fatalf("state = %q, want game_over", st.State)
	}

	g.Step(frame(0, core.ActionConfirm))
	if g.State().State != StateMenu {
		t.Errorf("state = %q after confirm, want menu", g.State().State)
	}
}

func TestHighScoreFlow(t *testing.T) {
	g := newTestGame(t)
	store := &fakeStore{qualify: true}
	g.SetStore(store)
	startPlaying(t, g, "medium")

	g.score = 420
	g.lives = 1
	g.loseLife()

	if g.State().State != StateNameInput {
		t.Fatalf("state = %q, want name_input", g.State().State)
	}
	if g.State().Score != 420 {
		t.Errorf("final score = %d, want 420", g.State().Score)
	}

	if err := g.SubmitName("a very long turkey hunter name"); err != nil {
		t.Fatalf("SubmitName: %v", err)
	}
	if g.State().State != StateGameOver {
		t.Errorf("state = %q after submit, want game_over", g.State().State)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d entries, want 1", len(store.saved))
	}
	if got := store.saved[0].Name; len(got) != MaxNameLength {
		t.Errorf("saved name %q not truncated to %d", got, MaxNameLength)
	}
	if store.saved[0].Score != 420 {
		t.Errorf("saved score = %d, want 420", store.saved[0].Score)
	}
	if store.savedAt[0] != "medium" {
		t.Errorf("saved difficulty = %q, want medium", store.savedAt[0])
	}
}

func TestNonQualifyingScoreSkipsNameInput(t *testing.T) {
	g := newTestGame(t)
	g.SetStore(&fakeStore{qualify: false})
	startPlaying(t, g, "hard")

	g.lives = 1
	g.loseLife()

	if g.State().State != StateGameOver {
		t.Errorf("state = %q, want game_over", g.State().State)
	}
}

func TestLevelTransition(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g, "easy")

	// Exhaust the level roster without letting anything spawn live.
	g.levels.spawned = g.levels.target
	g.enemies = g.enemies[:0]

	g.Step(frame(100))
	if g.State().State != StateLevelTransition {
		t.Fatalf("state = %q, want level_transition", g.State().State)
	}
	if g.State().Level != 2 {
		t.Errorf("level = %d, want 2", g.State().Level)
	}

	g.Step(frame(1000))
	if g.State().State != StateLevelTransition {
		t.Error("transition ended early")
	}
	g.Step(frame(2200))
	if g.State().State != StatePlaying {
		t.Errorf("state = %q after transition, want playing", g.State().State)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		startPlaying(t, g, "medium")
		now := int64(0)
		for i := 0; i < 3000; i++ {
			now += 16
			actions := []core.Action{}
			if i%3 == 0 {
				actions = append(actions, core.ActionFire)
			}
			if i%2 == 0 {
				actions = append(actions, core.ActionLeft)
			}
			g.Step(frame(now, actions...))
		}
		return g.Snapshot()
	}

	a := run()
	b := run()

	if a.Score != b.Score || a.Lives != b.Lives || a.Level != b.Level {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("enemy counts diverged: %d vs %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Errorf("enemy %d diverged: %+v vs %+v", i, a.Enemies[i], b.Enemies[i])
		}
	}
}
