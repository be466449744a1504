package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterRect returns a width×height rectangle centered inside outer.
// Offsets use integer division, so odd remainders bias toward the
// top-left corner.
func CenterRect(outer image.Rectangle, width, height int) image.Rectangle {
	outer = Normalize(outer)
	x := outer.Min.X + (outer.Dx()-width)/2
	y := outer.Min.Y + (outer.Dy()-height)/2
	return image.Rect(x, y, x+width, y+height)
}
