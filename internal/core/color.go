package core

// Color is the foreground color of a screen cell. The platform maps each value
// to an ANSI 256-color code.
type Color uint8

// Scene colors. The zero value leaves the terminal's default foreground.
const (
	ColorDefault      Color = iota
	ColorRed                // dead player
	ColorGreen              // ground strip
	ColorYellow             // lit windows
	ColorMagenta            // rooftop creature
	ColorBrightRed          // blade
	ColorBrightYellow       // full charge, message titles
	ColorBrightCyan         // player
	ColorBrightWhite        // roof line, HUD, boxes
	ColorGray               // building walls, clock, empty charge
)
