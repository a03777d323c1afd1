// Package transform contains the catalogue of named symmetric transforms.
package transform

import (
	"errors"
	"fmt"

	"github.com/pipelined/spiral/half"
	"github.com/pipelined/spiral/metric"
	"github.com/pipelined/spiral/pixel"
)

// ErrUnknown is returned when transform with requested name doesn't exist.
var ErrUnknown = errors.New("unknown transform")

// Transform is a named function of one image to another.
type Transform struct {
	Name string
	Help string
	fn   func(*pixel.Image) (*pixel.Image, error)
	// pipeline is nil for whole-image transforms.
	pipeline *half.Pipeline
	meter    metric.ResetFunc
}

// Apply runs transform over a copy of the image.
func (t Transform) Apply(img *pixel.Image) (*pixel.Image, error) {
	measure := t.meter()
	var (
		result *pixel.Image
		err    error
	)
	if t.pipeline != nil {
		result, err = t.pipeline.Apply(img)
	} else {
		result, err = t.fn(img)
	}
	if err != nil {
		return nil, err
	}
	measure(int64(result.Height * result.Width))
	return result, nil
}

func newHalf(name, help string, pairer half.Pairer, reducer half.Reducer, shaper half.Shaper) Transform {
	return Transform{
		Name:     name,
		Help:     help,
		pipeline: half.New(pairer, reducer, shaper, half.WithName(name)),
		meter:    metric.Meter(name),
	}
}

var (
	mirrorRightOverLeft = newHalf("mirror_right_over_left",
		"mirror right half over the left one",
		half.Passthrough(half.Right), half.Flip, half.Keep())
	mirrorLeftOverRight = newHalf("mirror_left_over_right",
		"mirror left half over the right one",
		half.Passthrough(half.Left), half.Identity, half.Keep())
	flipHorizontal = Transform{
		Name:  "flip_horizontal",
		Help:  "reverse the whole image along width",
		fn:    flip,
		meter: metric.Meter("flip_horizontal"),
	}
	averageHalves = newHalf("average_halves",
		"per channel mean of opposing pixels",
		half.Stack(), half.Mean, half.Keep())
	averageHalvesGlitched = newHalf("average_halves_glitched",
		"per channel mean of opposing pixels with 8-bit overflow",
		half.Stack(), half.GlitchedMean, half.Keep())
	sumHalves = newHalf("sum_halves",
		"per channel sum of opposing pixels modulo 256",
		half.Stack(), half.WrapSum, half.Keep())
	minHalves = newHalf("min_halves",
		"per channel minimum of opposing pixels",
		half.Stack(), half.Min, half.Keep())
	maxHalves = newHalf("max_halves",
		"per channel maximum of opposing pixels",
		half.Stack(), half.Max, half.Keep())
	minOfAllChannelsHalves = newHalf("min_of_all_channels_halves",
		"minimum of all color values of opposing pixels, grayscale",
		half.ChannelConcat(true), half.JointMin, half.Replicate(pixel.RGB))
	maxOfAllChannelsHalves = newHalf("max_of_all_channels_halves",
		"maximum of all color values of opposing pixels, grayscale",
		half.ChannelConcat(true), half.JointMax, half.Replicate(pixel.RGB))

	catalogue = []Transform{
		mirrorRightOverLeft,
		mirrorLeftOverRight,
		flipHorizontal,
		averageHalves,
		averageHalvesGlitched,
		sumHalves,
		minHalves,
		maxHalves,
		minOfAllChannelsHalves,
		maxOfAllChannelsHalves,
	}
)

func flip(img *pixel.Image) (*pixel.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("flip_horizontal: %w", err)
	}
	return img.FlipHorizontal(), nil
}

// All returns all transforms in catalogue order.
func All() []Transform {
	result := make([]Transform, len(catalogue))
	copy(result, catalogue)
	return result
}

// Names returns names of all transforms in catalogue order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for _, t := range catalogue {
		names = append(names, t.Name)
	}
	return names
}

// Lookup returns transform by its name.
func Lookup(name string) (Transform, error) {
	for _, t := range catalogue {
		if t.Name == name {
			return t, nil
		}
	}
	return Transform{}, fmt.Errorf("%q: %w", name, ErrUnknown)
}

// MirrorRightOverLeft replaces left half with mirrored right half.
func MirrorRightOverLeft(img *pixel.Image) (*pixel.Image, error) {
	return mirrorRightOverLeft.Apply(img)
}

// MirrorLeftOverRight replaces right half with mirrored left half.
func MirrorLeftOverRight(img *pixel.Image) (*pixel.Image, error) {
	return mirrorLeftOverRight.Apply(img)
}

// FlipHorizontal reverses the whole image along the width axis.
func FlipHorizontal(img *pixel.Image) (*pixel.Image, error) {
	return flipHorizontal.Apply(img)
}

// AverageHalves mirrors the per channel mean of opposing pixels.
func AverageHalves(img *pixel.Image) (*pixel.Image, error) {
	return averageHalves.Apply(img)
}

// AverageHalvesGlitched mirrors the per channel sum of opposing pixels
// wrapped at 256 and halved.
func AverageHalvesGlitched(img *pixel.Image) (*pixel.Image, error) {
	return averageHalvesGlitched.Apply(img)
}

// SumHalves mirrors the per channel sum of opposing pixels wrapped at 256.
func SumHalves(img *pixel.Image) (*pixel.Image, error) {
	return sumHalves.Apply(img)
}

// MinHalves mirrors the per channel minimum of opposing pixels.
func MinHalves(img *pixel.Image) (*pixel.Image, error) {
	return minHalves.Apply(img)
}

// MaxHalves mirrors the per channel maximum of opposing pixels.
func MaxHalves(img *pixel.Image) (*pixel.Image, error) {
	return maxHalves.Apply(img)
}

// MinOfAllChannelsHalves mirrors the minimum of all color values of
// opposing pixels. Alpha is ignored and result has 3 equal channels.
func MinOfAllChannelsHalves(img *pixel.Image) (*pixel.Image, error) {
	return minOfAllChannelsHalves.Apply(img)
}

// MaxOfAllChannelsHalves mirrors the maximum of all color values of
// opposing pixels. Alpha is ignored and result has 3 equal channels.
func MaxOfAllChannelsHalves(img *pixel.Image) (*pixel.Image, error) {
	return maxOfAllChannelsHalves.Apply(img)
}
