package core

// Color is a foreground color for a screen cell.
// The host maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the pitch renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)
