package png_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/spiral/mock"
	"github.com/pipelined/spiral/pixel"
	"github.com/pipelined/spiral/png"
)

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		img  *pixel.Image
	}{
		{name: "rgb.png", img: mock.Random(1, 5, 7, pixel.RGB)},
		{name: "rgba.png", img: mock.Alpha(mock.Random(2, 4, 3, pixel.RGBA), 100)},
	}
	for _, test := range tests {
		path := filepath.Join(dir, test.name)
		require.NoError(t, png.Write(path, test.img))
		result, err := png.Read(path)
		require.NoError(t, err)
		assert.Equal(t, test.img, result, test.name)
	}

	// fully opaque RGBA comes back as RGB
	opaque := mock.Alpha(mock.Random(3, 2, 2, pixel.RGBA), 255)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, opaque))
	result, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, opaque.DropChannel(pixel.Alpha), result)
}

func TestReadFail(t *testing.T) {
	dir := t.TempDir()
	_, err := png.Read(filepath.Join(dir, "missing.png"))
	assert.True(t, os.IsNotExist(err))

	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = png.Read(path)
	assert.Error(t, err)

	err = png.Write(filepath.Join(dir, "bad.png"), mock.Fill(1, 1, 6))
	assert.ErrorIs(t, err, pixel.ErrChannels)
	err = png.Write(filepath.Join(dir, "missing", "out.png"), mock.Fill(1, 1, 3))
	assert.Error(t, err)
}

func TestComparison(t *testing.T) {
	before := mock.Fill(1, 2, pixel.RGB, 10, 20, 30)
	after := mock.Fill(2, 3, pixel.RGB, 40, 50, 60)
	scale := 2

	result, err := png.Comparison(before, after, scale)
	require.NoError(t, err)
	assert.Equal(t, (2+png.Separator+3)*scale, result.Width)
	assert.Equal(t, 2*scale, result.Height)
	assert.Equal(t, []uint8{10, 20, 30}, result.At(1, 3))
	assert.Equal(t, []uint8{255, 255, 255}, result.At(2, 0))
	assert.Equal(t, []uint8{255, 255, 255}, result.At(0, 2*scale))
	assert.Equal(t, []uint8{40, 50, 60}, result.At(3, result.Width-1))

	_, err = png.Comparison(before, after, 0)
	assert.ErrorIs(t, err, png.ErrScale)
	_, err = png.Comparison(before, mock.Fill(1, 1, 2), 1)
	assert.ErrorIs(t, err, pixel.ErrChannels)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("images", "test001_sum_halves.png"), png.OutputPath(filepath.Join("images", "test001.jpg"), "sum_halves"))
	assert.Equal(t, "a_flip_horizontal.png", png.OutputPath("a", "flip_horizontal"))
}
