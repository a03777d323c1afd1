package half

import (
	"fmt"

	"github.com/pipelined/spiral/pixel"
)

// Reducer combines paired buffer into a single half.
type Reducer int

const (
	// Identity returns the single half as is.
	Identity Reducer = iota
	// Flip reverses the single half along the width axis.
	Flip
	// Mean is per channel arithmetic mean, truncated back to 8 bits.
	Mean
	// GlitchedMean is per channel sum modulo 256, divided by two.
	GlitchedMean
	// WrapSum is per channel sum modulo 256.
	WrapSum
	// Min is per channel minimum.
	Min
	// Max is per channel maximum.
	Max
	// JointMin is minimum of all channel values at position.
	JointMin
	// JointMax is maximum of all channel values at position.
	JointMax
)

var reducerNames = map[Reducer]string{
	Identity:     "identity",
	Flip:         "flip",
	Mean:         "mean",
	GlitchedMean: "glitched mean",
	WrapSum:      "wrap sum",
	Min:          "min",
	Max:          "max",
	JointMin:     "joint min",
	JointMax:     "joint max",
}

func (r Reducer) String() string {
	if name, ok := reducerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reducer(%d)", int(r))
}

// Layout returns layout of paired buffer expected by reducer.
func (r Reducer) Layout() Layout {
	switch r {
	case Identity, Flip:
		return Single
	case JointMin, JointMax:
		return Concatenated
	default:
		return Stacked
	}
}

// Reduce combines paired buffer into a single half.
func (r Reducer) Reduce(p Paired) (*pixel.Image, error) {
	if _, ok := reducerNames[r]; !ok {
		return nil, fmt.Errorf("%v: %w", r, ErrLayout)
	}
	if p.Layout != r.Layout() || len(p.Layers) != layers(p.Layout) {
		return nil, fmt.Errorf("%v reducer with %d %v layers: %w", r, len(p.Layers), p.Layout, ErrLayout)
	}
	switch r {
	case Identity:
		return p.Layers[0].Copy(), nil
	case Flip:
		return p.Layers[0].FlipHorizontal(), nil
	case JointMin:
		return joint(p.Layers[0], minOf), nil
	case JointMax:
		return joint(p.Layers[0], maxOf), nil
	case Mean:
		return pairwise(p.Layers[0], p.Layers[1], mean)
	case GlitchedMean:
		return pairwise(p.Layers[0], p.Layers[1], glitchedMean)
	case WrapSum:
		return pairwise(p.Layers[0], p.Layers[1], wrapSum)
	case Min:
		return pairwise(p.Layers[0], p.Layers[1], minOf)
	default:
		return pairwise(p.Layers[0], p.Layers[1], maxOf)
	}
}

func layers(l Layout) int {
	if l == Stacked {
		return 2
	}
	return 1
}

// pairwise applies fn to every value of left and its pair in right.
func pairwise(left, right *pixel.Image, fn func(a, b uint8) uint8) (*pixel.Image, error) {
	if left.Shape() != right.Shape() {
		return nil, &ShapeError{Left: left.Shape(), Right: right.Shape()}
	}
	result := pixel.New(left.Height, left.Width, left.Channels)
	for i := range result.Pix {
		result.Pix[i] = fn(left.Pix[i], right.Pix[i])
	}
	return result, nil
}

// joint folds all channels at every position into a single channel.
func joint(img *pixel.Image, fn func(a, b uint8) uint8) *pixel.Image {
	result := pixel.New(img.Height, img.Width, 1)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			px := img.At(y, x)
			v := px[0]
			for _, c := range px[1:] {
				v = fn(v, c)
			}
			result.Pix[y*img.Width+x] = v
		}
	}
	return result
}

func mean(a, b uint8) uint8 {
	return uint8((float64(a) + float64(b)) / 2)
}

// glitchedMean wraps before halving: 200 and 100 give 22, not 150.
func glitchedMean(a, b uint8) uint8 {
	return (a + b) / 2
}

func wrapSum(a, b uint8) uint8 {
	return a + b
}

func minOf(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
