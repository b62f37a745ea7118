package preview

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// CellAspect is how many times taller a terminal cell is than it is wide
const CellAspect = 2.0

// Fit downscales img so it covers at most cols x rows terminal cells while
// keeping its aspect ratio on screen
func Fit(img image.Image, cols, rows int) image.Image {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	imageAspect := float64(b.Dy()) / float64(b.Dx())
	w := cols
	h := int(math.Round(float64(w) * imageAspect / CellAspect))
	if h > rows {
		h = rows
		w = int(math.Round(float64(h) * CellAspect / imageAspect))
	}
	w = max(1, min(w, cols))
	h = max(1, h)

	return resize.Resize(uint(w), uint(h), img, resize.Bilinear)
}

// Thumbnail scales img down to fit in a size x size box, never upscaling
func Thumbnail(img image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, img, resize.Lanczos3)
}
