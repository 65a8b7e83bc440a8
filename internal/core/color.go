package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to an ANSI code; games only pick from this list.
type Color uint8

const (
	ColorDefault Color = iota

	// Interface colors: HUD, status line, hints.
	ColorGray
	ColorCyan
	ColorBrightYellow

	// Tile ramp, low values first.
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorOrange
	ColorBrightRed
	ColorRed
	ColorBrightGreen
	ColorGreen
	ColorBrightCyan
	ColorBrightMagenta
	ColorMagenta
)
