package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGray
)

// Board palette.
const (
	ColorSnakeHead   = ColorBrightGreen
	ColorSnakeBody   = ColorGreen
	ColorSnakeWrap   = ColorCyan
	ColorFood        = ColorRed
	ColorPowerUp     = ColorYellow
	ColorBorder      = ColorGray
	ColorBorderWrap  = ColorMagenta
	ColorStatus      = ColorWhite
	ColorStatusAlert = ColorYellow
)
