// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FaceMeasurer measures text with a font.Face. The face is not
// required to be safe for concurrent use.
type FaceMeasurer struct {
	mu   sync.Mutex
	face font.Face
}

// NewFaceMeasurer returns a Measurer for face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// NewGoFace returns a Measurer for the Go Regular font at size
// pixels per em.
func NewGoFace(size float64) (*FaceMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("text: parse Go font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: Go font face: %w", err)
	}
	return NewFaceMeasurer(face), nil
}

func (m *FaceMeasurer) Advance(s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fixedToFloat(font.MeasureString(m.face, s))
}

func (m *FaceMeasurer) Metrics() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	met := m.face.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(met.Ascent),
		Descent:    fixedToFloat(met.Descent),
		LineHeight: fixedToFloat(met.Height),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
