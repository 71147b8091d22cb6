// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/colornames"

	"flexlayout.org/layout"
	"flexlayout.org/text"
)

var movies = []string{
	"The Shawshank Redemption",
	"The Godfather",
	"The Dark Knight",
	"The Godfather Part II",
}

// movieContainer fills c with a bordered label per movie.
func movieContainer(c *layout.Container, basis float64) *layout.Container {
	c.RoundToInt = true
	for _, m := range movies {
		l := text.NewLabel(m, text.CellMeasurer{})
		l.Padding = layout.UniformSpacing(1)
		it := layout.NewItem(l)
		it.FlexBasisPercent = basis
		c.Items = append(c.Items, it)
	}
	return c
}

func render(c *layout.Container, width, height int) string {
	c.Measure(layout.Exact(float64(width)), layout.Exact(float64(height)))
	cv := New(width, height)
	cv.Draw(c)
	return "\n" + cv.String()
}

func TestColumn(t *testing.T) {
	c := movieContainer(&layout.Container{Direction: layout.Column}, layout.UnsetFlexBasis)
	got := render(c, 14, 20)
	want := `
┌──────────┐··
│The       │··
│Shawshank │··
│Redemption│··
└──────────┘··
┌─────────┐···
│The      │···
│Godfather│···
└─────────┘···
┌────────┐····
│The Dark│····
│Knight  │····
└────────┘····
┌─────────┐···
│The      │···
│Godfather│···
│Part II  │···
└─────────┘···
··············
··············`
	if got != want {
		t.Errorf("got:%s\nwant:%s", got, want)
	}
}

func TestRow(t *testing.T) {
	c := movieContainer(&layout.Container{Direction: layout.Row}, layout.UnsetFlexBasis)
	got := render(c, 60, 8)
	want := `
┌───────────────────┐┌─────────┐┌──────────┐┌──────────────┐
│The Shawshank      ││The      ││The Dark  ││The Godfather │
│Redemption         ││Godfather││Knight    ││Part II       │
└───────────────────┘└─────────┘└──────────┘└──────────────┘
····························································
····························································
····························································
····························································`
	if got != want {
		t.Errorf("got:%s\nwant:%s", got, want)
	}
}

func TestColumnCrossAxisCentered(t *testing.T) {
	c := movieContainer(&layout.Container{
		Direction:  layout.Column,
		AlignItems: layout.AlignCenter,
	}, layout.UnsetFlexBasis)
	got := render(c, 20, 20)
	want := `
··┌─────────────┐···
··│The Shawshank│···
··│Redemption   │···
··└─────────────┘···
··┌─────────────┐···
··│The Godfather│···
··└─────────────┘···
·┌───────────────┐··
·│The Dark Knight│··
·└───────────────┘··
┌──────────────────┐
│The Godfather Part│
│II                │
└──────────────────┘
····················
····················
····················
····················
····················
····················`
	if got != want {
		t.Errorf("got:%s\nwant:%s", got, want)
	}
}

func TestRowMainAxisCenteredFromZeroBasis(t *testing.T) {
	c := movieContainer(&layout.Container{
		Direction:      layout.Row,
		JustifyContent: layout.JustifyCenter,
	}, 0)
	got := render(c, 60, 6)
	want := `
·········┌──────────┐┌─────────┐┌──────┐┌─────────┐·········
·········│The       ││The      ││The   ││The      │·········
·········│Shawshank ││Godfather││Dark  ││Godfather│·········
·········│Redemption│└─────────┘│Knight││Part II  │·········
·········└──────────┘···········└──────┘│         │·········
········································└─────────┘·········`
	if got != want {
		t.Errorf("got:%s\nwant:%s", got, want)
	}
}

func TestDrawBoxWideRunes(t *testing.T) {
	cv := New(6, 3)
	cv.DrawBox(cv.Bounds(), []string{"世界!"})
	want := "┌────┐\n│世界│\n└────┘"
	if got := cv.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	c := &layout.Container{
		JustifyContent: layout.JustifySpaceBetween,
		Items: []layout.FlexItem{
			layout.NewItem(layout.Box{Width: 10, Height: 10}),
			layout.NewItem(layout.Box{Width: 10, Height: 10}),
		},
	}
	sz := c.Measure(layout.Exact(40), layout.Exact(20))
	img := Snapshot(c, sz, Options{Scale: 2})
	if got := img.Bounds().Size(); got.X != 80 || got.Y != 40 {
		t.Fatalf("snapshot size %v, want (80,40)", got)
	}
	tests := []struct {
		x, y int
		want [4]uint8
	}{
		{70, 30, rgba(colornames.White)},
		{10, 10, rgba(palette[0])},
		{70, 10, rgba(palette[1])},
		{0, 0, rgba(colornames.Dimgray)},
	}
	for _, test := range tests {
		px := img.RGBAAt(test.x, test.y)
		if got := rgba(px); got != test.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", test.x, test.y, got, test.want)
		}
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, Snapshot(c, sz, Options{Labels: true})); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("png size %dx%d, want 40x20", cfg.Width, cfg.Height)
	}
}

func rgba(c color.RGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}
