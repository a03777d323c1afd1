package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrChannels is returned when number of channels is not supported.
var ErrChannels = errors.New("unsupported number of channels")

// FromImage converts decoded image into pixel buffer. Opaque images produce
// RGB buffers, all others produce RGBA buffers with non-premultiplied alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	channels := RGBA
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = RGB
	}
	img := New(b.Dy(), b.Dx(), channels)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			img.Set(y, x, c.R, c.G, c.B, c.A)
		}
	}
	return img
}

// Image converts pixel buffer into image.Image. Single-channel buffers
// become grayscale, RGB buffers get opaque alpha.
func (img *Image) Image() (image.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	r := image.Rect(0, 0, img.Width, img.Height)
	switch img.Channels {
	case 1:
		g := image.NewGray(r)
		for y := 0; y < img.Height; y++ {
			copy(g.Pix[y*g.Stride:], img.Pix[y*img.Stride():(y+1)*img.Stride()])
		}
		return g, nil
	case RGB, RGBA:
		n := image.NewNRGBA(r)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				px := img.At(y, x)
				a := uint8(0xff)
				if img.HasAlpha() {
					a = px[Alpha]
				}
				n.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: a})
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("convert %v: %w", img.Shape(), ErrChannels)
	}
}
