package app

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/rubi-browser/icongen/internal/render"
)

// renderProbe exercises the rendering stack on a throwaway canvas.
// Swapped out in tests to simulate a broken environment.
var renderProbe = func() error {
	if render.FallbackFace == nil {
		return fmt.Errorf("no built-in font face")
	}
	if render.FallbackFace.Metrics().Height <= 0 {
		return fmt.Errorf("built-in font face reports no line height")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		return fmt.Errorf("png encoder: %w", err)
	}
	return nil
}

// CheckRenderCapability verifies the glyph and PNG stack before any
// filesystem side effect. On failure the returned message tells the
// user how to recover; the caller is expected to exit non-zero without
// creating directories or files.
func CheckRenderCapability() error {
	if err := renderProbe(); err != nil {
		return fmt.Errorf("image rendering unavailable (%v); reinstall with: go install github.com/rubi-browser/icongen@latest", err)
	}
	return nil
}
