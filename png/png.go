// Package png reads images into pixel buffers and writes them back as PNG
// files. Input can be PNG, JPEG, GIF or WEBP.
package png

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/pipelined/spiral/pixel"
)

// Separator is the width of the gap between comparison panels before
// scaling.
const Separator = 4

// ErrScale is returned when comparison scale is not positive.
var ErrScale = errors.New("scale must be positive")

// Decode reads image in any registered format.
func Decode(r io.Reader) (*pixel.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return pixel.FromImage(src), nil
}

// Read decodes image file.
func Read(path string) (*pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", path, err)
	}
	return img, nil
}

// Encode writes image as PNG.
func Encode(w io.Writer, img *pixel.Image) error {
	i, err := img.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, i)
}

// Write saves image to PNG file.
func Write(path string, img *pixel.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %v: %w", path, err)
	}
	return f.Close()
}

// Comparison places before and after images side by side on white
// background. Both panels are scaled with nearest neighbour, so every pixel
// stays a sharp square.
func Comparison(before, after *pixel.Image, scale int) (*pixel.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale %d: %w", scale, ErrScale)
	}
	b, err := before.Image()
	if err != nil {
		return nil, err
	}
	a, err := after.Image()
	if err != nil {
		return nil, err
	}
	height := before.Height
	if after.Height > height {
		height = after.Height
	}
	width := before.Width + Separator + after.Width
	canvas := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	left := image.Rect(0, 0, before.Width*scale, before.Height*scale)
	xdraw.NearestNeighbor.Scale(canvas, left, b, b.Bounds(), draw.Over, nil)
	right := image.Rect((before.Width+Separator)*scale, 0, width*scale, after.Height*scale)
	xdraw.NearestNeighbor.Scale(canvas, right, a, a.Bounds(), draw.Over, nil)
	return pixel.FromImage(canvas), nil
}

// OutputPath returns path of PNG file for image produced by named transform
// next to the input file.
func OutputPath(in, transform string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(filepath.Dir(in), base+"_"+transform+".png")
}
