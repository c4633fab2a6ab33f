package images_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/images"
)

func TestResize(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		maxSize    int
		wantWidth  int
		wantHeight int
	}{
		{name: "landscape", width: 2000, height: 1500, maxSize: 512, wantWidth: 512, wantHeight: 384},
		{name: "portrait truncates", width: 800, height: 1200, maxSize: 512, wantWidth: 341, wantHeight: 512},
		{name: "square", width: 1024, height: 1024, maxSize: 512, wantWidth: 512, wantHeight: 512},
		{name: "exactly at bound", width: 512, height: 512, maxSize: 512, wantWidth: 512, wantHeight: 512},
		{name: "one oversized dimension", width: 600, height: 100, maxSize: 512, wantWidth: 512, wantHeight: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))

			resized := images.Resize(img, tt.maxSize)
			bounds := resized.Bounds()
			require.Equal(t, tt.wantWidth, bounds.Dx())
			require.Equal(t, tt.wantHeight, bounds.Dy())
		})
	}
}

func TestResize_SmallImageUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))

	resized := images.Resize(img, 512)
	require.Same(t, image.Image(img), resized)
}
