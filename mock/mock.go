// Package mock provides deterministic images for tests.
package mock

import (
	"math/rand"

	"github.com/pipelined/spiral/pixel"
)

// Fill returns an image where every pixel holds values. Missing values are
// zero, extra values are ignored.
func Fill(height, width, channels int, values ...uint8) *pixel.Image {
	img := pixel.New(height, width, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(y, x, values...)
		}
	}
	return img
}

// Gradient returns an image where neighbouring values differ.
func Gradient(height, width, channels int) *pixel.Image {
	img := pixel.New(height, width, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := img.At(y, x)
			for c := range px {
				px[c] = uint8(y*31 + x*17 + c*53)
			}
		}
	}
	return img
}

// Random returns an image of pseudo-random values. Same seed gives same
// image.
func Random(seed int64, height, width, channels int) *pixel.Image {
	r := rand.New(rand.NewSource(seed))
	img := pixel.New(height, width, channels)
	r.Read(img.Pix)
	return img
}

// Alpha returns a copy of RGBA image with alpha channel set to a.
func Alpha(img *pixel.Image, a uint8) *pixel.Image {
	result := img.Copy()
	if !result.HasAlpha() {
		return result
	}
	for i := pixel.Alpha; i < len(result.Pix); i += result.Channels {
		result.Pix[i] = a
	}
	return result
}
