package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorGreen         // platform surface
	ColorYellow        // player
	ColorCyan          // HUD
	ColorRed           // restart banner
	ColorOrange        // player while airborne
	ColorGray          // platform body
	ColorBrightWhite   // highlights
)
