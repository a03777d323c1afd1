// Package pixel provides an API to manipulate 8-bit image buffers. It allows to:
// 	- slice and join images along the width axis
//	- flip images horizontally
//	- drop and concatenate channels
package pixel

import (
	"errors"
	"fmt"
)

const (
	// RGB is the number of channels in an image without alpha.
	RGB = 3
	// RGBA is the number of channels in an image with alpha.
	RGBA = 4
	// Alpha is the index of alpha channel in RGBA images.
	Alpha = 3
)

// ErrSize is returned when buffer length doesn't match image dimensions.
var ErrSize = errors.New("buffer size doesn't match dimensions")

// Image is an interleaved 8-bit image. Pixels are stored row by row, every
// pixel is Channels consecutive values.
type Image struct {
	Pix      []uint8
	Height   int
	Width    int
	Channels int
}

// Shape describes image dimensions.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Height, s.Width, s.Channels)
}

// New returns an empty image of specified dimensions.
func New(height, width, channels int) *Image {
	return &Image{
		Pix:      make([]uint8, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// FromPix wraps pix into image. Pix is not copied.
func FromPix(pix []uint8, height, width, channels int) (*Image, error) {
	img := &Image{
		Pix:      pix,
		Height:   height,
		Width:    width,
		Channels: channels,
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks if dimensions are positive and buffer length matches them.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrSize)
	}
	if img.Height <= 0 || img.Width <= 0 || img.Channels <= 0 {
		return fmt.Errorf("shape %v: %w", img.Shape(), ErrSize)
	}
	if len(img.Pix) != img.Height*img.Width*img.Channels {
		return fmt.Errorf("shape %v with %d values: %w", img.Shape(), len(img.Pix), ErrSize)
	}
	return nil
}

// Shape returns dimensions of the image.
func (img *Image) Shape() Shape {
	return Shape{
		Height:   img.Height,
		Width:    img.Width,
		Channels: img.Channels,
	}
}

// Stride is the number of values in a single row.
func (img *Image) Stride() int {
	return img.Width * img.Channels
}

// HasAlpha returns true if the last channel is alpha.
func (img *Image) HasAlpha() bool {
	return img.Channels == RGBA
}

// At returns the values of pixel at row y and column x. Returned slice
// shares memory with the image.
func (img *Image) At(y, x int) []uint8 {
	i := y*img.Stride() + x*img.Channels
	return img.Pix[i : i+img.Channels : i+img.Channels]
}

// Set assigns values to the pixel at row y and column x.
func (img *Image) Set(y, x int, values ...uint8) {
	copy(img.At(y, x), values)
}

// Copy returns a deep copy of the image.
func (img *Image) Copy() *Image {
	result := &Image{
		Pix:      make([]uint8, len(img.Pix)),
		Height:   img.Height,
		Width:    img.Width,
		Channels: img.Channels,
	}
	copy(result.Pix, img.Pix)
	return result
}

// Columns creates a new copy of image from start column with defined width.
//
// if start >= image width or start < 0, nil is returned
// if start + width > image width, width is decreased till the right edge
func (img *Image) Columns(start, width int) *Image {
	if img == nil || start >= img.Width || start < 0 || width <= 0 {
		return nil
	}
	if start+width > img.Width {
		width = img.Width - start
	}
	result := New(img.Height, width, img.Channels)
	for y := 0; y < img.Height; y++ {
		src := y*img.Stride() + start*img.Channels
		copy(result.Pix[y*result.Stride():(y+1)*result.Stride()], img.Pix[src:src+result.Stride()])
	}
	return result
}

// FlipHorizontal returns a copy of image reversed along the width axis.
func (img *Image) FlipHorizontal() *Image {
	result := New(img.Height, img.Width, img.Channels)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			copy(result.At(y, img.Width-1-x), img.At(y, x))
		}
	}
	return result
}

// AppendColumns returns a new image with columns of other placed after
// columns of img. Both images must have the same height and channels.
func (img *Image) AppendColumns(other *Image) (*Image, error) {
	if img.Height != other.Height || img.Channels != other.Channels {
		return nil, fmt.Errorf("append %v to %v: %w", other.Shape(), img.Shape(), ErrSize)
	}
	result := New(img.Height, img.Width+other.Width, img.Channels)
	for y := 0; y < img.Height; y++ {
		row := result.Pix[y*result.Stride() : (y+1)*result.Stride()]
		n := copy(row, img.Pix[y*img.Stride():(y+1)*img.Stride()])
		copy(row[n:], other.Pix[y*other.Stride():(y+1)*other.Stride()])
	}
	return result, nil
}

// DropChannel returns a copy of image without channel c.
func (img *Image) DropChannel(c int) *Image {
	if c < 0 || c >= img.Channels {
		return img.Copy()
	}
	result := New(img.Height, img.Width, img.Channels-1)
	pos := 0
	for i, v := range img.Pix {
		if i%img.Channels == c {
			continue
		}
		result.Pix[pos] = v
		pos++
	}
	return result
}

// ConcatChannels returns a new image where channels of other follow
// channels of img at every position. Both images must have the same height
// and width.
func (img *Image) ConcatChannels(other *Image) (*Image, error) {
	if img.Height != other.Height || img.Width != other.Width {
		return nil, fmt.Errorf("concat %v with %v: %w", img.Shape(), other.Shape(), ErrSize)
	}
	result := New(img.Height, img.Width, img.Channels+other.Channels)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			px := result.At(y, x)
			n := copy(px, img.At(y, x))
			copy(px[n:], other.At(y, x))
		}
	}
	return result, nil
}
