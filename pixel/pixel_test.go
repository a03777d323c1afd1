package pixel_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/spiral/pixel"
)

// row builds a single-row image from pixels.
func row(channels int, pixels ...[]uint8) *pixel.Image {
	img := pixel.New(1, len(pixels), channels)
	for x, px := range pixels {
		img.Set(0, x, px...)
	}
	return img
}

func TestFromPix(t *testing.T) {
	tests := []struct {
		pix      []uint8
		height   int
		width    int
		channels int
		valid    bool
	}{
		{pix: make([]uint8, 2*3*4), height: 2, width: 3, channels: 4, valid: true},
		{pix: make([]uint8, 2*3*3), height: 2, width: 3, channels: 3, valid: true},
		{pix: make([]uint8, 5), height: 2, width: 3, channels: 3},
		{pix: nil, height: 0, width: 3, channels: 3},
		{pix: nil, height: 1, width: 1, channels: 3},
	}
	for _, test := range tests {
		img, err := pixel.FromPix(test.pix, test.height, test.width, test.channels)
		if test.valid {
			assert.NoError(t, err)
			assert.Equal(t, test.width*test.channels, img.Stride())
		} else {
			assert.ErrorIs(t, err, pixel.ErrSize)
			assert.Nil(t, img)
		}
	}
}

func TestColumns(t *testing.T) {
	img := row(3, []uint8{1, 1, 1}, []uint8{2, 2, 2}, []uint8{3, 3, 3}, []uint8{4, 4, 4})
	tests := []struct {
		start    int
		width    int
		expected *pixel.Image
	}{
		{start: 0, width: 2, expected: row(3, []uint8{1, 1, 1}, []uint8{2, 2, 2})},
		{start: 2, width: 2, expected: row(3, []uint8{3, 3, 3}, []uint8{4, 4, 4})},
		{start: 3, width: 5, expected: row(3, []uint8{4, 4, 4})},
		{start: 4, width: 1, expected: nil},
		{start: -1, width: 1, expected: nil},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, img.Columns(test.start, test.width))
	}

	// copies don't share memory
	c := img.Columns(0, 1)
	c.Pix[0] = 100
	assert.Equal(t, uint8(1), img.Pix[0])
}

func TestFlipHorizontal(t *testing.T) {
	img := pixel.New(2, 3, 4)
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	flipped := img.FlipHorizontal()
	assert.Equal(t, img.At(0, 0), flipped.At(0, 2))
	assert.Equal(t, img.At(1, 2), flipped.At(1, 0))
	assert.Equal(t, img.At(1, 1), flipped.At(1, 1))
	assert.Equal(t, img, flipped.FlipHorizontal())
}

func TestAppendColumns(t *testing.T) {
	left := row(3, []uint8{1, 2, 3})
	right := row(3, []uint8{4, 5, 6}, []uint8{7, 8, 9})
	result, err := left.AppendColumns(right)
	require.NoError(t, err)
	assert.Equal(t, row(3, []uint8{1, 2, 3}, []uint8{4, 5, 6}, []uint8{7, 8, 9}), result)

	_, err = left.AppendColumns(row(4, []uint8{1, 2, 3, 4}))
	assert.ErrorIs(t, err, pixel.ErrSize)
}

func TestChannels(t *testing.T) {
	img := row(4, []uint8{1, 2, 3, 255}, []uint8{4, 5, 6, 128})
	dropped := img.DropChannel(pixel.Alpha)
	assert.Equal(t, row(3, []uint8{1, 2, 3}, []uint8{4, 5, 6}), dropped)
	assert.Equal(t, img, img.DropChannel(7))

	concat, err := dropped.ConcatChannels(row(3, []uint8{7, 8, 9}, []uint8{10, 11, 12}))
	require.NoError(t, err)
	assert.Equal(t, row(6, []uint8{1, 2, 3, 7, 8, 9}, []uint8{4, 5, 6, 10, 11, 12}), concat)

	_, err = dropped.ConcatChannels(row(3, []uint8{7, 8, 9}))
	assert.ErrorIs(t, err, pixel.ErrSize)
}

func TestImageConversion(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	img := pixel.FromImage(nrgba)
	assert.Equal(t, row(4, []uint8{10, 20, 30, 40}, []uint8{50, 60, 70, 255}), img)

	back, err := img.Image()
	require.NoError(t, err)
	assert.Equal(t, nrgba.Pix, back.(*image.NRGBA).Pix)

	opaque := image.NewRGBA(image.Rect(0, 0, 1, 1))
	opaque.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, row(3, []uint8{1, 2, 3}), pixel.FromImage(opaque))

	gray, err := row(1, []uint8{7}, []uint8{9}).Image()
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 9}, gray.(*image.Gray).Pix)

	_, err = row(6, make([]uint8, 6)).Image()
	assert.ErrorIs(t, err, pixel.ErrChannels)
}
