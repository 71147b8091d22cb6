// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapingMeasurer measures text shaped by HarfBuzz, so ligatures
// and kerning are reflected in the advances.
type ShapingMeasurer struct {
	size fixed.Int26_6
	lang language.Language

	// mu guards face and shaper, neither of which is safe for
	// concurrent use.
	mu      sync.Mutex
	face    *font.Face
	shaper  shaping.HarfbuzzShaper
	metrics Metrics
}

// NewShapingMeasurer parses an OpenType font and returns a Measurer
// for it at size pixels per em.
func NewShapingMeasurer(ttf []byte, size float64) (*ShapingMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	m := &ShapingMeasurer{
		size: floatToFixed(size),
		lang: language.NewLanguage("en"),
		face: font.NewFace(face.Font),
	}
	out := m.shape([]rune{' '})
	b := out.LineBounds
	m.metrics = Metrics{
		Ascent:     fixedToFloat(b.Ascent),
		Descent:    -fixedToFloat(b.Descent),
		LineHeight: fixedToFloat(b.Ascent - b.Descent + b.Gap),
	}
	return m, nil
}

func (m *ShapingMeasurer) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fixedToFloat(m.shape([]rune(s)).Advance)
}

func (m *ShapingMeasurer) Metrics() Metrics {
	return m.metrics
}

func (m *ShapingMeasurer) shape(runes []rune) shaping.Output {
	script := language.Latin
	for _, r := range runes {
		if r != ' ' {
			script = language.LookupScript(r)
			break
		}
	}
	return m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      m.size,
		Script:    script,
		Language:  m.lang,
	})
}
