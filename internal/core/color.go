package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Colors used by the game renderers.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorRed
	ColorCyan
	ColorBlue
	ColorWhite
	ColorGray
)
