package game

import (
	"math/rand"

	"github.com/vovakirdan/turkey-shoot/internal/config"
	"github.com/vovakirdan/turkey-shoot/internal/core"
)

// Session states
const (
	StateMenu            = "menu"
	StatePlaying         = "playing"
	StatePaused          = "paused"
	StateLevelTransition = "level_transition"
	StateNameInput       = "name_input"
	StateGameOver        = "game_over"
	StateHighScores      = "high_scores"
)

// MaxNameLength caps high-score names.
const MaxNameLength = 15

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI; when set,
// the menu is skipped and a run starts immediately.
var difficultyPreset string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	if config.ValidPreset(preset) {
		difficultyPreset = preset
	} else {
		difficultyPreset = ""
	}
}

// Game implements the shooter session: the menu, the fixed-step
// simulation, level transitions, and the game-over flow.
type Game struct {
	// Entities
	player   *Player
	bullets  []*Bullet
	enemies  []*Enemy
	powerups []*PowerUp

	// Progression
	levels *LevelManager
	score  int
	lives  int

	// Global slow-enemies effect. slowUntil of zero means inactive.
	slowMultiplier float64
	slowUntil      int64

	// Timers (milliseconds on the session clock)
	now              int64
	lastPowerUpSpawn int64
	transitionStart  int64

	// Pause bookkeeping. The session clock is input time minus total
	// paused time, so timed effects and spawn timers freeze while paused.
	pausedAt    int64
	pausedTotal int64

	// Session state
	state        string
	difficulty   string
	menuCursor   int
	scoresCursor int
	finalScore   int
	autoStart    bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	cat     *Catalog
	rng     *rand.Rand

	store ScoreStore
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{state: StateMenu, slowMultiplier: 1}
}

// SetStore attaches a persistence backend for high scores. A nil store
// skips name entry and goes straight to game over.
func (g *Game) SetStore(store ScoreStore) {
	g.store = store
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "turkeyshoot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Turkey Shoot"
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.cfg = cfg

	cat, err := BuildCatalog(cfg)
	if err != nil {
		cfg = config.DefaultShooterConfig()
		g.cfg = cfg
		cat, _ = BuildCatalog(cfg)
	}
	g.cat = cat

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.state = StateMenu
	g.menuCursor = 0
	g.scoresCursor = 0
	g.score = 0
	g.finalScore = 0
	g.lives = 0
	g.player = nil
	g.bullets = nil
	g.enemies = nil
	g.powerups = nil
	g.levels = nil
	g.slowMultiplier = 1
	g.slowUntil = 0
	g.now = 0
	g.pausedAt = 0
	g.pausedTotal = 0

	g.autoStart = difficultyPreset != ""
	if g.autoStart {
		g.difficulty = difficultyPreset
	}
}

// State returns the current observable state.
func (g *Game) State() core.GameState {
	level := 0
	if g.levels != nil {
		level = g.levels.CurrentLevel()
	}
	score := g.score
	if g.state == StateGameOver || g.state == StateNameInput {
		score = g.finalScore
	}
	return core.GameState{
		State:    g.state,
		Score:    score,
		Lives:    g.lives,
		Level:    level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// A CLI-selected difficulty skips the menu on the first tick.
	if g.autoStart {
		g.autoStart = false
		g.startRun(g.difficulty, g.sessionNow(in.Now))
	}

	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.pausedTotal += in.Now - g.pausedAt
			g.state = StatePlaying
		}
	case StateLevelTransition:
		g.stepTransition(in)
	case StateNameInput:
		// Name entry is collected by the platform layer, which calls
		// SubmitName. Nothing advances here.
	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.toMenu()
		}
	case StateHighScores:
		g.stepHighScores(in)
	}

	return core.StepResult{State: g.State()}
}

// MenuItems returns the menu entries in display order.
func (g *Game) MenuItems() []string {
	items := config.DifficultyNames()
	return append(items, "high scores")
}

// MenuCursor returns the selected menu index.
func (g *Game) MenuCursor() int {
	return g.menuCursor
}

// ScoresCursor returns the selected difficulty tab on the score screen.
func (g *Game) ScoresCursor() int {
	return g.scoresCursor
}

func (g *Game) stepMenu(in core.InputFrame) {
	items := g.MenuItems()
	if in.Has(core.ActionUp) {
		g.menuCursor--
		if g.menuCursor < 0 {
			g.menuCursor = len(items) - 1
		}
	}
	if in.Has(core.ActionDown) {
		g.menuCursor = (g.menuCursor + 1) % len(items)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		if g.menuCursor < len(items)-1 {
			g.startRun(items[g.menuCursor], g.sessionNow(in.Now))
		} else {
			g.state = StateHighScores
		}
	}
}

func (g *Game) stepHighScores(in core.InputFrame) {
	names := config.DifficultyNames()
	if in.Has(core.ActionLeft) {
		g.scoresCursor--
		if g.scoresCursor < 0 {
			g.scoresCursor = len(names) - 1
		}
	}
	if in.Has(core.ActionRight) {
		g.scoresCursor = (g.scoresCursor + 1) % len(names)
	}
	if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
		g.toMenu()
	}
}

func (g *Game) stepTransition(in core.InputFrame) {
	now := g.sessionNow(in.Now)
	if now-g.transitionStart >= g.cfg.Levels.TransitionMs {
		g.levels.StartLevel(now)
		g.state = StatePlaying
	}
}

// sessionNow converts input time to the session clock, which excludes
// time spent paused.
func (g *Game) sessionNow(inputNow int64) int64 {
	return inputNow - g.pausedTotal
}

// stepPlaying runs one simulation tick. The order is fixed: effects
// expire first, then input, spawns, motion, and finally collisions, so
// every tick resolves against fully updated positions. Enemy spawn runs
// before powerup handling and compaction waits until tick end; neither
// ordering is observable, because an enemy spawned this tick inherits
// the active slow multiplier via SpawnNext and every later pass filters
// on the Active flag.
func (g *Game) stepPlaying(in core.InputFrame) {
	now := g.sessionNow(in.Now)
	g.now = now

	if in.Has(core.ActionPause) {
		g.pausedAt = in.Now
		g.state = StatePaused
		return
	}

	screenW := float64(g.runtime.ScreenW)
	screenH := float64(g.runtime.ScreenH)

	// 1. Expire timed effects.
	g.player.Effects.Expire(now)
	g.expireSlow(now)

	// 2. Player movement.
	if in.Has(core.ActionLeft) {
		g.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.player.MoveRight(screenW)
	}

	// 3. Shooting.
	if in.Has(core.ActionFire) && g.player.CanShoot(now) {
		g.player.Shoot(now)
		gx, gy := g.player.GunPosition()
		g.bullets = append(g.bullets, NewBullet(gx, gy, g.cfg.Bullet.Width, g.cfg.Bullet.Height, g.cfg.Bullet.Speed))
	}

	// 4. Enemy spawning.
	target := g.player.Center()
	if e := g.levels.SpawnNext(now, g.slowMultiplier, screenW, g.cfg.Enemies.SpawnMargin); e != nil {
		g.enemies = append(g.enemies, e)
	}

	// 5. Powerup spawning.
	if now-g.lastPowerUpSpawn >= g.cfg.PowerUps.SpawnIntervalMs {
		g.spawnPowerUp(screenW)
		g.lastPowerUpSpawn = now
	}

	// 6. Bullet motion.
	for _, b := range g.bullets {
		b.Update()
	}

	// 7. Enemy motion.
	for _, e := range g.enemies {
		e.Update(screenW, &target)
	}

	// 8. Powerup motion.
	for _, p := range g.powerups {
		p.Update(screenH)
	}

	// 9. Bullet hits.
	points, _ := CheckBulletEnemyCollisions(g.bullets, g.enemies)
	g.score += points

	// 10. Pickups.
	if p := CheckPowerUpPlayerCollision(g.powerups, g.player); p != nil {
		g.applyPowerUp(p.Spec, now)
	}

	// 11. Life loss. A collision and an escape in the same tick each
	// cost one life; multiple escapes in one tick cost one.
	if CheckEnemyPlayerCollision(g.enemies, g.player) {
		g.loseLife()
	}
	if g.state == StatePlaying && CheckEnemiesReachedBottom(g.enemies, screenH) > 0 {
		g.loseLife()
	}

	// 12. Compaction and level completion.
	g.compact()
	if g.state == StatePlaying && g.levels.IsComplete(len(g.enemies)) {
		g.levels.Advance()
		g.bullets = g.bullets[:0]
		g.transitionStart = now
		g.state = StateLevelTransition
	}
}

func (g *Game) spawnPowerUp(screenW float64) {
	kinds := g.cat.PowerUpKinds()
	if len(kinds) == 0 {
		return
	}
	spec := g.cat.PowerUps[kinds[g.rng.Intn(len(kinds))]]
	g.powerups = append(g.powerups, NewPowerUp(spec, g.rng, screenW, g.cfg.PowerUps.SpawnMargin))
}

// applyPowerUp routes a collected pickup to its effect. Slow-enemies is
// global rather than a player effect: the first pickup scales every
// active enemy down and arms the expiry timer; re-pickups while active
// only refresh the timer so enemies are never scaled twice.
func (g *Game) applyPowerUp(spec PowerUpSpec, now int64) {
	switch spec.Effect {
	case EffectExtraLife:
		g.lives++

	case EffectSlowEnemies:
		mod := g.cfg.PowerUps.Modifiers.SlowEnemies
		if g.slowUntil == 0 {
			for _, e := range g.enemies {
				if e.Active {
					e.Speed *= mod
				}
			}
			g.slowMultiplier = mod
		}
		g.slowUntil = now + spec.DurationMs

	default:
		g.player.Effects.Apply(spec.Effect, spec.DurationMs, now)
	}
}

// expireSlow disarms the global slow effect. Enemies already on screen
// keep their reduced speed; only enemies spawned afterwards run at full
// speed again.
func (g *Game) expireSlow(now int64) {
	if g.slowUntil == 0 || now < g.slowUntil {
		return
	}
	g.slowMultiplier = 1
	g.slowUntil = 0
}

// loseLife costs one life and strips the player's effects. The global
// slow effect runs on its own timer and survives.
func (g *Game) loseLife() {
	g.lives--
	g.player.Effects.Clear()
	if g.lives <= 0 {
		g.endRun()
	}
}

func (g *Game) endRun() {
	g.finalScore = g.score
	if g.store != nil && g.store.IsHighScore(g.finalScore, g.difficulty) {
		g.state = StateNameInput
	} else {
		g.state = StateGameOver
	}
}

// SubmitName records the player's name for the finished run and moves
// to the game-over screen. Names are truncated to MaxNameLength; saving
// is best-effort and a storage failure is reported but never blocks.
func (g *Game) SubmitName(name string) error {
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}
	if name == "" {
		name = "anonymous"
	}

	var err error
	if g.store != nil {
		err = g.store.AddHighScore(name, g.finalScore, g.difficulty, g.levels.CurrentLevel())
	}
	g.state = StateGameOver
	return err
}

// startRun begins a run on the given difficulty preset.
func (g *Game) startRun(difficulty string, now int64) {
	settings, ok := g.cfg.Difficulty[difficulty]
	if !ok {
		settings = g.cfg.Difficulty[string(config.DifficultyMedium)]
		difficulty = string(config.DifficultyMedium)
	}
	g.difficulty = difficulty

	g.player = NewPlayer(PlayerParams{
		Width:           g.cfg.Player.Width,
		Height:          g.cfg.Player.Height,
		Speed:           g.cfg.Player.Speed,
		ShootCooldownMs: g.cfg.Player.ShootCooldownMs,
		FireRateBase:    g.cfg.PowerUps.Modifiers.FireRate,
		SpeedBoostBase:  g.cfg.PowerUps.Modifiers.SpeedBoost,
	}, float64(g.runtime.ScreenW), float64(g.runtime.ScreenH))

	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.powerups = g.powerups[:0]

	g.score = 0
	g.finalScore = 0
	g.lives = settings.Lives
	g.slowMultiplier = 1
	g.slowUntil = 0
	g.lastPowerUpSpawn = now

	g.levels = NewLevelManager(g.cfg.Levels, settings, g.cat, g.rng)
	g.levels.StartLevel(now)
	g.state = StatePlaying
}

// toMenu returns to the menu, discarding any run state.
func (g *Game) toMenu() {
	g.state = StateMenu
	g.menuCursor = 0
	g.player = nil
	g.bullets = nil
	g.enemies = nil
	g.powerups = nil
	g.levels = nil
	g.score = 0
	g.slowMultiplier = 1
	g.slowUntil = 0
}

// compact drops inactive entities, reusing the backing arrays.
func (g *Game) compact() {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	powerups := g.powerups[:0]
	for _, p := range g.powerups {
		if p.Active {
			powerups = append(powerups, p)
		}
	}
	g.powerups = powerups
}

// Difficulty returns the preset name of the current or last run.
func (g *Game) Difficulty() string {
	return g.difficulty
}

var _ core.Game = (*Game)(nil)
