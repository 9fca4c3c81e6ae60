package presentation

import (
	"image"

	"golang.org/x/image/draw"
)

// scalePreview resizes a reference sample to a square preview of side pixels.
func scalePreview(src image.Image, side int) image.Image {
	if src == nil || side <= 0 {
		return nil
	}
	dst := image.NewGray(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
