package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoundaryWall = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbInnerWall    = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbFallingWall  = tcell.NewRGBColor(0, 139, 139)   // Dark cyan once released
	RgbGoal         = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbPlayer       = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbModePlayingBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeWonBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusBar     = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)
