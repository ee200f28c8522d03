package core

// Color represents a foreground color for a screen cell.
// Renderers map these to terminal colors.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
