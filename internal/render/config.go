package render

import "image/color"

// Render configuration for the placeholder icon set.
var (
	// Background and foreground per the extension style guide.
	Background = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF} // #667eea
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff

	// Glyph drawn centered on every icon.
	Glyph = "R"

	// Preferred font size as a fraction of the icon edge.
	FontScale = 0.6
)
