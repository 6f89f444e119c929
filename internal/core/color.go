package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the arena. The neon tones are the portal's accent colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorNeonRed
	ColorNeonBlue
	ColorNeonPurple
	ColorNeonGreen
)

// PadColors is the fixed color order used by games with four colored pads
// or lanes (memory pads, rhythm lanes).
var PadColors = [4]Color{ColorNeonRed, ColorNeonBlue, ColorNeonPurple, ColorNeonGreen}
