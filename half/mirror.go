package half

import "github.com/pipelined/spiral/pixel"

// Mirror returns full image made of the half followed by its horizontal
// mirror. Result is twice as wide as the half.
func Mirror(img *pixel.Image) *pixel.Image {
	// shapes always match
	result, _ := img.AppendColumns(img.FlipHorizontal())
	return result
}
