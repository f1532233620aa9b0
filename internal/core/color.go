package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorGray
	ColorDarkGray  // Unlit terrain
	ColorDarkGreen // Unlit hedges and grass
	ColorPink
	ColorAmber // Lamp glow
)

// ShadeRamp picks one of three colors by brightness in [0, 1].
// Brightness below 0.45 is dark, at or above 0.75 is lit.
func ShadeRamp(brightness float64, dark, mid, lit Color) Color {
	switch {
	case brightness >= 0.75:
		return lit
	case brightness >= 0.45:
		return mid
	default:
		return dark
	}
}
