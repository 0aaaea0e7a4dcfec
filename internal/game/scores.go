package game

// ScoreEntry is one row of the high-score table.
type ScoreEntry struct {
	Name      string
	Score     int
	Level     int
	CreatedAt string
}

// ScoreStore persists high scores per difficulty. The game treats the
// store as best-effort: a nil store disables the name-entry flow and a
// failed save never blocks the state machine.
type ScoreStore interface {
	IsHighScore(score int, difficulty string) bool
	AddHighScore(name string, score int, difficulty string, level int) error
	HighScores(difficulty string) []ScoreEntry
}
