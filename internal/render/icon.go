package render

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/rubi-browser/icongen/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// IconRenderer rasterizes square placeholder icons: the configured
// glyph centered on a flat background.
type IconRenderer struct {
	ttFont    *truetype.Font
	triedFont bool
	Logger    interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{} }

// GlyphMetrics describes the measured pixel extent of a rendered glyph.
// MinX/MinY are the bounding box origin relative to the baseline dot;
// MinY is negative for glyphs that rise above the baseline.
type GlyphMetrics struct {
	Width  int
	Height int
	MinX   int
	MinY   int
}

// MeasureGlyph returns the tight pixel bounds of text under face.
func MeasureGlyph(face font.Face, text string) GlyphMetrics {
	bounds, _ := font.BoundString(face, text)
	return GlyphMetrics{
		Width:  (bounds.Max.X - bounds.Min.X).Ceil(),
		Height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
		MinX:   bounds.Min.X.Floor(),
		MinY:   bounds.Min.Y.Floor(),
	}
}

// GlyphOrigin returns the drawer dot that centers a measured glyph on a
// square canvas of the given edge. The bounding box origin is
// subtracted so visual centering accounts for ascent and bearing.
func GlyphOrigin(edge int, m GlyphMetrics) image.Point {
	cell := layout.CenterRect(image.Rect(0, 0, edge, edge), m.Width, m.Height)
	return image.Point{X: cell.Min.X - m.MinX, Y: cell.Min.Y - m.MinY}
}

// RenderIcon draws one icon: an edge×edge canvas filled with the
// background color and the glyph centered in the foreground color.
func (r *IconRenderer) RenderIcon(edge int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	face := r.faceFor(edge)
	metrics := MeasureGlyph(face, Glyph)
	dot := GlyphOrigin(edge, metrics)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  &image.Uniform{C: Foreground},
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	drawer.DrawString(Glyph)

	if r.Logger != nil {
		r.Logger.Infof("render", "icon %dx%d drawn, glyph %dx%d at (%d,%d)",
			edge, edge, metrics.Width, metrics.Height, dot.X, dot.Y)
	}
	return canvas
}
