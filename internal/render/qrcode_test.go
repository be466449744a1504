package render

import (
	"image"
	"strings"
	"testing"
)

func TestInstallQRCardEmptyURL(t *testing.T) {
	r := NewIconRenderer()
	card, err := r.InstallQRCard("", 0)
	if err != nil {
		t.Fatalf("InstallQRCard(\"\") error = %v", err)
	}
	if card != nil {
		t.Errorf("InstallQRCard(\"\") = %v, want nil (asset skipped)", card.Bounds())
	}
}

func TestInstallQRCardDefaultSize(t *testing.T) {
	r := NewIconRenderer()
	card, err := r.InstallQRCard("https://example.com/rubi", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := card.Bounds(), image.Rect(0, 0, 256, 256); got != want {
		t.Errorf("card bounds = %v, want %v", got, want)
	}
	// The margin around the centered QR is card background.
	for _, p := range []image.Point{{0, 0}, {255, 0}, {0, 255}, {255, 255}} {
		if got := card.RGBAAt(p.X, p.Y); got != Background {
			t.Errorf("margin pixel %v = %v, want background %v", p, got, Background)
		}
	}
}

func TestInstallQRCardOversizedPayload(t *testing.T) {
	r := NewIconRenderer()
	if _, err := r.InstallQRCard(strings.Repeat("a", 3000), 0); err == nil {
		t.Error("InstallQRCard with oversized payload: want error, got nil")
	}
}
