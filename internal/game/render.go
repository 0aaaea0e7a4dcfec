package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/turkey-shoot/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '▲'
	PlayerBody  = '█'
	BulletChar  = '|'
	PowerUpChar = '◆'
	BorderHoriz = '─'
)

// enemyGlyphs maps enemy kinds to their glyph and color. Unknown kinds
// fall back to a generic marker.
var enemyGlyphs = map[string]struct {
	Glyph rune
	Color core.Color
}{
	"turkey":               {'@', core.ColorBrown},
	"cranberry":            {'o', core.ColorRed},
	"pumpkin_pie":          {'w', core.ColorOrange},
	"mashed_potato":        {'~', core.ColorWhite},
	"stuffing":             {'#', core.ColorYellow},
	"gravy_boat":           {'=', core.ColorBrown},
	"green_bean_casserole": {'%', core.ColorGreen},
}

// powerupColors maps effect kinds to pickup colors.
var powerupColors = map[EffectKind]core.Color{
	EffectFireRate:    core.ColorBrightYellow,
	EffectExtraLife:   core.ColorBrightRed,
	EffectSpeedBoost:  core.ColorBrightCyan,
	EffectSlowEnemies: core.ColorBrightBlue,
}

// Render draws the current state onto the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	case StateHighScores:
		g.renderHighScores(dst)
	case StatePlaying, StatePaused, StateLevelTransition, StateNameInput, StateGameOver:
		g.renderHUD(dst)
		g.renderEntities(dst)
		g.renderOverlay(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-4, "TURKEY SHOOT", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-3, "the feast fights back")

	items := g.MenuItems()
	for i, item := range items {
		y := mid - 1 + i
		if i == g.menuCursor {
			dst.DrawTextCenteredColored(y, "> "+item+" <", core.ColorBrightGreen)
		} else {
			dst.DrawTextCentered(y, item)
		}
	}

	dst.DrawTextCentered(dst.Height()-2, "arrows move | enter select | q quit")
}

func (g *Game) renderHighScores(dst *core.Screen) {
	names := g.MenuItems()[:len(g.MenuItems())-1]
	difficulty := names[g.scoresCursor]

	dst.DrawTextCenteredColored(1, "HIGH SCORES", core.ColorBrightYellow)

	// Difficulty tabs
	var tabs strings.Builder
	for i, name := range names {
		if i > 0 {
			tabs.WriteString("  ")
		}
		if i == g.scoresCursor {
			tabs.WriteString("[" + name + "]")
		} else {
			tabs.WriteString(" " + name + " ")
		}
	}
	dst.DrawTextCentered(3, tabs.String())

	if g.store == nil {
		dst.DrawTextCentered(6, "no score storage configured")
	} else {
		entries := g.store.HighScores(difficulty)
		if len(entries) == 0 {
			dst.DrawTextCentered(6, "no scores yet")
		}
		for i, e := range entries {
			line := fmt.Sprintf("%2d. %-15s %6d  lvl %d", i+1, e.Name, e.Score, e.Level)
			dst.DrawTextCentered(5+i, line)
		}
	}

	dst.DrawTextCentered(dst.Height()-2, "left/right switch | esc back")
}

// renderHUD draws the score, lives, and level indicator plus the active
// effects line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	level := 0
	if g.levels != nil {
		level = g.levels.CurrentLevel()
	}
	levelText := fmt.Sprintf("Level: %d", level)
	if g.levels != nil && g.levels.IsBossLevel() {
		levelText += " BOSS"
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if effects := g.buildEffectsString(); effects != "" {
		dst.DrawTextColored(1, 1, effects, core.ColorBrightCyan)
	} else {
		for x := 0; x < dst.Width(); x++ {
			dst.Set(x, 1, BorderHoriz)
		}
	}
}

// buildEffectsString renders active effects compactly, e.g.
// "FIRE x2 7s | SPEED x1 | SLOW x1 4s".
func (g *Game) buildEffectsString() string {
	if g.player == nil {
		return ""
	}
	var parts []string
	if n := g.player.Effects.Stacks(EffectFireRate); n > 0 {
		parts = append(parts, effectLabel("FIRE", n, g.player.Effects.Remaining(EffectFireRate, g.now)))
	}
	if n := g.player.Effects.Stacks(EffectSpeedBoost); n > 0 {
		parts = append(parts, effectLabel("SPEED", n, g.player.Effects.Remaining(EffectSpeedBoost, g.now)))
	}
	if g.slowUntil > 0 {
		parts = append(parts, effectLabel("SLOW", 1, g.slowUntil-g.now))
	}
	return strings.Join(parts, " | ")
}

// effectLabel formats one HUD effect entry, e.g. "FIRE x2 7s" for a
// timed effect or "SPEED x1" for a persistent one.
func effectLabel(name string, stacks int, remainingMs int64) string {
	label := fmt.Sprintf("%s x%d", name, stacks)
	if remainingMs > 0 {
		label += fmt.Sprintf(" %ds", (remainingMs+999)/1000)
	}
	return label
}

func (g *Game) renderEntities(dst *core.Screen) {
	for _, p := range g.powerups {
		if p.Active {
			g.drawPowerUp(dst, p)
		}
	}
	for _, e := range g.enemies {
		if e.Active {
			g.drawEnemy(dst, e)
		}
	}
	for _, b := range g.bullets {
		if b.Active {
			dst.SetCell(int(b.X), int(b.Y), BulletChar, core.ColorBrightWhite)
		}
	}
	if g.player != nil {
		g.drawPlayer(dst)
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	x := int(g.player.X)
	y := int(g.player.Y)
	w := int(g.player.Width)
	h := int(g.player.Height)

	// Nose on the top row, hull below
	dst.SetCell(x+w/2, y, PlayerChar, core.ColorBrightGreen)
	for row := 1; row < h; row++ {
		for col := 0; col < w; col++ {
			dst.SetCell(x+col, y+row, PlayerBody, core.ColorGreen)
		}
	}
}

func (g *Game) drawEnemy(dst *core.Screen, e *Enemy) {
	look, ok := enemyGlyphs[e.Spec.Kind]
	if !ok {
		look.Glyph = '?'
		look.Color = core.ColorWhite
	}
	r := core.NewRect(int(e.X), int(e.Y), int(e.Spec.Width), int(e.Spec.Height))
	dst.DrawRect(r, look.Glyph, look.Color)

	// Boss health bar above the boss
	if g.levels != nil && e.Spec.Kind == g.cfg.Levels.Boss && e.Spec.Health > 1 {
		g.drawHealthBar(dst, e)
	}
}

func (g *Game) drawHealthBar(dst *core.Screen, e *Enemy) {
	w := int(e.Spec.Width)
	y := int(e.Y) - 1
	if y < 2 || w < 2 {
		return
	}
	filled := e.Health * w / e.Spec.Health
	for i := 0; i < w; i++ {
		c := core.ColorRed
		ch := '░'
		if i < filled {
			ch = '█'
			c = core.ColorBrightRed
		}
		dst.SetCell(int(e.X)+i, y, ch, c)
	}
}

func (g *Game) drawPowerUp(dst *core.Screen, p *PowerUp) {
	c, ok := powerupColors[p.Spec.Effect]
	if !ok {
		c = core.ColorWhite
	}
	r := core.NewRect(int(p.X), int(p.Y), int(p.Spec.Width), int(p.Spec.Height))
	dst.DrawRect(r, PowerUpChar, c)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2

	switch g.state {
	case StatePaused:
		dst.DrawTextCenteredColored(mid, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, "press p to resume")

	case StateLevelTransition:
		next := g.levels.CurrentLevel()
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("LEVEL %d", next), core.ColorBrightGreen)
		if next%g.cfg.Levels.BossInterval == 0 {
			dst.DrawTextCenteredColored(mid+1, "boss incoming", core.ColorBrightRed)
		}

	case StateNameInput:
		dst.DrawTextCenteredColored(mid-1, "NEW HIGH SCORE!", core.ColorBrightYellow)
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", g.finalScore))
		dst.DrawTextCentered(mid+1, "enter your name below")

	case StateGameOver:
		dst.DrawTextCenteredColored(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", g.finalScore))
		dst.DrawTextCentered(mid+1, "press enter for menu")
	}
}
