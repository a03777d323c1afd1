package half

import (
	"fmt"

	"github.com/pipelined/spiral/pixel"
)

// Shaper adjusts channels of reduced half.
type Shaper struct {
	channels int
}

// Keep returns shaper which doesn't change the half.
func Keep() Shaper {
	return Shaper{}
}

// Replicate returns shaper which copies a single channel into n channels.
func Replicate(n int) Shaper {
	return Shaper{channels: n}
}

// Shape adjusts the half. Replicating shaper requires a single channel half.
func (s Shaper) Shape(img *pixel.Image) (*pixel.Image, error) {
	if s.channels == 0 {
		return img, nil
	}
	if img.Channels != 1 {
		return nil, fmt.Errorf("replicate %v to %d channels: %w", img.Shape(), s.channels, ErrLayout)
	}
	result := pixel.New(img.Height, img.Width, s.channels)
	for i, v := range img.Pix {
		px := result.Pix[i*s.channels : (i+1)*s.channels]
		for c := range px {
			px[c] = v
		}
	}
	return result, nil
}

func (s Shaper) String() string {
	if s.channels == 0 {
		return "keep"
	}
	return fmt.Sprintf("replicate %d", s.channels)
}
