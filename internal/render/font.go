package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontPaths lists candidate platform fonts, tried in order. The first
// file that reads and parses wins; if none does, rendering falls back
// to the built-in face.
var FontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// FallbackFace is the built-in face used when no platform font loads.
// It is fixed-size; FontScale applies only to the preferred font.
var FallbackFace font.Face = basicfont.Face7x13

// faceFor returns a face sized for an icon edge. A font problem never
// aborts a run; the fallback face keeps every size renderable.
func (r *IconRenderer) faceFor(edge int) font.Face {
	tt := r.preferredFont()
	if tt == nil {
		return FallbackFace
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    float64(edge) * FontScale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// preferredFont parses the first usable candidate from FontPaths.
// The parsed font is cached for subsequent sizes.
func (r *IconRenderer) preferredFont() *truetype.Font {
	if r.triedFont {
		return r.ttFont
	}
	r.triedFont = true
	for _, path := range FontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		tt, err := truetype.Parse(data)
		if err != nil {
			if r.Logger != nil {
				r.Logger.Errorf("font", "parse %s failed, trying next: %v", path, err)
			}
			continue
		}
		if r.Logger != nil {
			r.Logger.Infof("font", "loaded platform font %s", path)
		}
		r.ttFont = tt
		return tt
	}
	if r.Logger != nil {
		r.Logger.Errorf("font", "no platform font usable, using built-in face")
	}
	return nil
}
