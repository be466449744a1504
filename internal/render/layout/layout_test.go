package layout

import (
	"image"
	"testing"
)

func TestCenterRect(t *testing.T) {
	tests := []struct {
		name   string
		outer  image.Rectangle
		width  int
		height int
		want   image.Rectangle
	}{
		{"even fit", image.Rect(0, 0, 16, 16), 6, 10, image.Rect(5, 3, 11, 13)},
		{"odd remainder biases top-left", image.Rect(0, 0, 15, 15), 6, 6, image.Rect(4, 4, 10, 10)},
		{"exact fill", image.Rect(0, 0, 8, 8), 8, 8, image.Rect(0, 0, 8, 8)},
		{"offset outer", image.Rect(10, 20, 30, 40), 10, 10, image.Rect(15, 25, 25, 35)},
		{"inverted outer normalized", image.Rect(16, 16, 0, 0), 6, 6, image.Rect(5, 5, 11, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterRect(tt.outer, tt.width, tt.height); got != tt.want {
				t.Errorf("CenterRect(%v, %d, %d) = %v, want %v", tt.outer, tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"already normal", image.Rect(1, 2, 3, 4), image.Rect(1, 2, 3, 4)},
		{"swapped x", image.Rectangle{Min: image.Pt(3, 2), Max: image.Pt(1, 4)}, image.Rect(1, 2, 3, 4)},
		{"swapped both", image.Rectangle{Min: image.Pt(3, 4), Max: image.Pt(1, 2)}, image.Rect(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
