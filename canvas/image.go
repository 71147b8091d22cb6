// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"flexlayout.org/layout"
)

// Options control Snapshot.
type Options struct {
	// Scale is the integer magnification. Values below 1 mean 1.
	Scale int
	// Labels draws the index of every item in its top left corner.
	Labels bool
}

var palette = []color.RGBA{
	colornames.Lightsteelblue,
	colornames.Lightsalmon,
	colornames.Palegreen,
	colornames.Khaki,
	colornames.Plum,
	colornames.Lightcoral,
}

// Snapshot renders the items of a measured container of the given
// size as filled, outlined rectangles.
func Snapshot(fc *layout.Container, size layout.Size, opts Options) *image.RGBA {
	bounds := image.Rect(0, 0, int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(colornames.White), image.Point{}, draw.Src)
	for i, it := range fc.Items {
		r := it.Frame()
		draw.Draw(img, r, image.NewUniform(palette[i%len(palette)]), image.Point{}, draw.Over)
		outline(img, r, colornames.Dimgray)
	}
	scale := max(opts.Scale, 1)
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
		img = dst
	}
	if opts.Labels {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(colornames.Black),
			Face: basicfont.Face7x13,
		}
		for i, it := range fc.Items {
			p := it.Frame().Min.Mul(scale)
			d.Dot = fixed.P(p.X+2, p.Y+basicfont.Face7x13.Ascent+1)
			d.DrawString(strconv.Itoa(i))
		}
	}
	return img
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
