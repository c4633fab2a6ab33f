package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize downscales an image so its larger dimension equals maxSize,
// preserving aspect ratio with Lanczos resampling. Images already within
// bounds are returned unchanged. The scaled dimension is truncated, not
// rounded: 800x1200 at maxSize 512 becomes 341x512.
func Resize(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= maxSize && height <= maxSize {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxSize
		newHeight = int(float64(height) * float64(maxSize) / float64(width))
	} else {
		newHeight = maxSize
		newWidth = int(float64(width) * float64(maxSize) / float64(height))
	}

	return imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
}
