package core

// Color identifies a foreground color for a screen cell.
// The platform layer maps these to ANSI codes; the core never
// deals with escape sequences.
type Color uint8

// Palette used by the game's entities and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
