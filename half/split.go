package half

import (
	"fmt"

	"github.com/pipelined/spiral/pixel"
)

// Side selects one of the halves.
type Side int

const (
	// Left is the half which starts at the left edge.
	Left Side = iota
	// Right is the half which ends at the right edge.
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Halves are two equally shaped parts of the image.
type Halves struct {
	Left  *pixel.Image
	Right *pixel.Image
}

// Side returns the half of requested side.
func (h Halves) Side(s Side) *pixel.Image {
	if s == Right {
		return h.Right
	}
	return h.Left
}

// Width returns half width for image of provided width.
func Width(width int) int {
	return (width + 1) / 2
}

// Split copies left and right halves of the image. Image must have 3 or 4
// channels and be at least 2 pixels wide.
func Split(img *pixel.Image) (Halves, error) {
	if err := img.Validate(); err != nil {
		return Halves{}, err
	}
	if img.Channels != pixel.RGB && img.Channels != pixel.RGBA {
		return Halves{}, fmt.Errorf("split %v: %w", img.Shape(), pixel.ErrChannels)
	}
	if img.Width < 2 {
		return Halves{}, fmt.Errorf("split %v: %w", img.Shape(), ErrNarrow)
	}
	w := Width(img.Width)
	return Halves{
		Left:  img.Columns(0, w),
		Right: img.Columns(img.Width-w, w),
	}, nil
}
