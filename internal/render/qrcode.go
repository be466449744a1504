package render

import (
	"image"
	"image/draw"

	"github.com/rubi-browser/icongen/internal/render/layout"
	"github.com/skip2/go-qrcode"
)

const (
	defaultInstallQRSizePx = 256
	installQRMarginPx      = 16
)

// InstallQRCard renders a QR code for the extension install URL onto a
// card in the icon background color, so the asset matches the icon set.
// An empty url returns (nil, nil); the asset is optional.
func (r *IconRenderer) InstallQRCard(url string, sizePx int) (*image.RGBA, error) {
	if url == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultInstallQRSizePx
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrImg := code.Image(sizePx - 2*installQRMarginPx)

	card := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	draw.Draw(card, card.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	cell := layout.CenterRect(card.Bounds(), qrImg.Bounds().Dx(), qrImg.Bounds().Dy())
	draw.Draw(card, cell, qrImg, qrImg.Bounds().Min, draw.Src)

	if r.Logger != nil {
		r.Logger.Infof("qr", "install QR card %dx%d drawn", sizePx, sizePx)
	}
	return card, nil
}
