// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eliasnaur.com/font/roboto/robotoregular"
	"golang.org/x/image/font/gofont/goregular"

	"flexlayout.org/layout"
	"flexlayout.org/text"
	"flexlayout.org/unit"
)

// scene is a container measured with a pair of specs.
type scene struct {
	Name      string        `json:"name"`
	Width     specJSON      `json:"width"`
	Height    specJSON      `json:"height"`
	Container containerJSON `json:"container"`
	Items     []itemJSON    `json:"items"`
}

type specJSON struct {
	Size length `json:"size"`
	Mode string `json:"mode"`
}

type containerJSON struct {
	Direction      string      `json:"direction"`
	Wrap           string      `json:"wrap"`
	JustifyContent string      `json:"justifyContent"`
	AlignItems     string      `json:"alignItems"`
	AlignContent   string      `json:"alignContent"`
	Margin         spacingJSON `json:"margin"`
	MaxLines       int         `json:"maxLines"`
	RoundToInt     bool        `json:"roundToInt"`
	FillWidth      bool        `json:"fillWidth"`
	FillHeight     bool        `json:"fillHeight"`
}

type spacingJSON struct {
	Left   length `json:"left"`
	Top    length `json:"top"`
	Right  length `json:"right"`
	Bottom length `json:"bottom"`
}

type itemJSON struct {
	// A non-empty Text makes the item a label.
	Text     string      `json:"text"`
	Font     string      `json:"font"`
	FontSize length      `json:"fontSize"`
	Padding  spacingJSON `json:"padding"`
	MaxLines int         `json:"maxLines"`

	Width     *length `json:"width"`
	Height    *length `json:"height"`
	MinWidth  length  `json:"minWidth"`
	MinHeight length  `json:"minHeight"`
	MaxWidth  length  `json:"maxWidth"`
	MaxHeight length  `json:"maxHeight"`

	Grow       *float64    `json:"grow"`
	Shrink     *float64    `json:"shrink"`
	Basis      *float64    `json:"basis"`
	AlignSelf  string      `json:"alignSelf"`
	Margin     spacingJSON `json:"margin"`
	WrapBefore bool        `json:"wrapBefore"`
	Baseline   *length     `json:"baseline"`
}

// length is a unit.Value that also accepts bare JSON numbers and
// the sizes "wrap" and "match".
type length struct {
	unit.Value
}

func (l *length) UnmarshalJSON(b []byte) error {
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return err
		}
	}
	switch s {
	case "wrap":
		l.Value = unit.Value{V: layout.WrapContent}
		return nil
	case "match":
		l.Value = unit.Value{V: layout.MatchParent}
		return nil
	}
	return l.Value.UnmarshalText([]byte(s))
}

// decodeScenes reads a scene object or an array of scenes. Unnamed
// scenes are named after base, numbered when there are several.
func decodeScenes(r io.Reader, base string) ([]scene, error) {
	br := bufio.NewReader(r)
	var scenes []scene
	first, err := peekNonSpace(br)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(br)
	dec.DisallowUnknownFields()
	if first == '[' {
		err = dec.Decode(&scenes)
	} else {
		scenes = make([]scene, 1)
		err = dec.Decode(&scenes[0])
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}
	for i := range scenes {
		if scenes[i].Name != "" {
			continue
		}
		scenes[i].Name = base
		if len(scenes) > 1 {
			scenes[i].Name = fmt.Sprintf("%s-%d", base, i)
		}
	}
	return scenes, nil
}

func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errors.New("empty scene file")
			}
			return 0, err
		}
		if !bytes.ContainsAny(b, " \t\r\n") {
			return b[0], nil
		}
		r.Discard(1)
	}
}

// builder converts scenes to containers at a display density.
type builder struct {
	metric   unit.Metric
	measurer map[string]text.Measurer
}

func newBuilder(m unit.Metric) *builder {
	return &builder{metric: m, measurer: make(map[string]text.Measurer)}
}

// build returns the container of s and the specs to measure it with.
func (b *builder) build(s scene) (*layout.Container, layout.MeasureSpec, layout.MeasureSpec, error) {
	ws, err := b.spec(s.Width)
	if err != nil {
		return nil, ws, ws, fmt.Errorf("%s: width: %w", s.Name, err)
	}
	hs, err := b.spec(s.Height)
	if err != nil {
		return nil, ws, hs, fmt.Errorf("%s: height: %w", s.Name, err)
	}
	c, err := b.container(s.Container)
	if err != nil {
		return nil, ws, hs, fmt.Errorf("%s: %w", s.Name, err)
	}
	for i, ij := range s.Items {
		it, err := b.item(ij)
		if err != nil {
			return nil, ws, hs, fmt.Errorf("%s: item %d: %w", s.Name, i, err)
		}
		c.Items = append(c.Items, it)
	}
	return c, ws, hs, nil
}

func (b *builder) spec(s specJSON) (layout.MeasureSpec, error) {
	mode, err := parseEnum[layout.Mode](s.Mode, 3)
	if err != nil {
		return layout.MeasureSpec{}, err
	}
	size := b.px(s.Size)
	if size < 0 {
		return layout.MeasureSpec{}, fmt.Errorf("negative size %v", s.Size.Value)
	}
	switch mode {
	case layout.Exactly:
		return layout.Exact(size), nil
	case layout.AtMost:
		return layout.UpTo(size), nil
	default:
		return layout.Unbounded(), nil
	}
}

func (b *builder) container(cj containerJSON) (*layout.Container, error) {
	c := &layout.Container{
		Margin:     b.spacing(cj.Margin),
		MaxLines:   cj.MaxLines,
		RoundToInt: cj.RoundToInt,
		FillWidth:  cj.FillWidth,
		FillHeight: cj.FillHeight,
	}
	var err error
	if c.Direction, err = parseEnum[layout.FlexDirection](cj.Direction, 4); err != nil {
		return nil, fmt.Errorf("direction: %w", err)
	}
	if c.Wrap, err = parseEnum[layout.FlexWrap](cj.Wrap, 3); err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	if c.JustifyContent, err = parseEnum[layout.JustifyContent](cj.JustifyContent, 6); err != nil {
		return nil, fmt.Errorf("justifyContent: %w", err)
	}
	if c.AlignItems, err = parseEnum[layout.AlignItems](cj.AlignItems, 5); err != nil {
		return nil, fmt.Errorf("alignItems: %w", err)
	}
	if c.AlignContent, err = parseEnum[layout.AlignContent](cj.AlignContent, 6); err != nil {
		return nil, fmt.Errorf("alignContent: %w", err)
	}
	return c, nil
}

func (b *builder) item(ij itemJSON) (layout.FlexItem, error) {
	m, err := b.measurable(ij)
	if err != nil {
		return layout.FlexItem{}, err
	}
	it := layout.NewItem(m)
	if ij.Grow != nil {
		it.FlexGrow = *ij.Grow
	}
	if ij.Shrink != nil {
		it.FlexShrink = *ij.Shrink
	}
	if ij.Basis != nil {
		it.FlexBasisPercent = *ij.Basis
	}
	if ij.Baseline != nil {
		it.Baseline = b.px(*ij.Baseline)
	}
	if it.AlignSelf, err = parseEnum[layout.AlignSelf](ij.AlignSelf, 6); err != nil {
		return layout.FlexItem{}, fmt.Errorf("alignSelf: %w", err)
	}
	it.Margin = b.spacing(ij.Margin)
	it.WrapBefore = ij.WrapBefore
	return it, nil
}

func (b *builder) measurable(ij itemJSON) (layout.Measurable, error) {
	lo := layout.Size{Width: b.px(ij.MinWidth), Height: b.px(ij.MinHeight)}
	hi := layout.Size{Width: b.px(ij.MaxWidth), Height: b.px(ij.MaxHeight)}
	if ij.Text == "" {
		return layout.Box{
			Width:  b.request(ij.Width, 0),
			Height: b.request(ij.Height, 0),
			Min:    lo,
			Max:    hi,
		}, nil
	}
	m, err := b.font(ij.Font, ij.FontSize)
	if err != nil {
		return nil, err
	}
	l := text.NewLabel(ij.Text, m)
	l.Width = b.request(ij.Width, layout.WrapContent)
	l.Height = b.request(ij.Height, layout.WrapContent)
	l.Padding = b.spacing(ij.Padding)
	l.MaxLines = ij.MaxLines
	l.Min, l.Max = lo, hi
	return l, nil
}

// font returns a shared measurer for a font name and size.
func (b *builder) font(name string, size length) (text.Measurer, error) {
	if size.V == 0 {
		size.Value = unit.Value{V: 14, U: unit.UnitSp}
	}
	px := b.px(size)
	key := fmt.Sprintf("%s@%g", name, px)
	if m, ok := b.measurer[key]; ok {
		return m, nil
	}
	var (
		m   text.Measurer
		err error
	)
	switch name {
	case "", "cell":
		m = text.CellMeasurer{}
	case "go":
		m, err = text.NewGoFace(px)
	case "shaped":
		m, err = text.NewShapingMeasurer(goregular.TTF, px)
	case "roboto":
		m, err = text.NewShapingMeasurer(robotoregular.TTF, px)
	default:
		err = fmt.Errorf("unknown font %q", name)
	}
	if err != nil {
		return nil, err
	}
	b.measurer[key] = m
	return m, nil
}

func (b *builder) request(l *length, def float64) float64 {
	if l == nil {
		return def
	}
	return b.px(*l)
}

func (b *builder) spacing(s spacingJSON) layout.Spacing {
	return layout.Spacing{
		Left:   b.px(s.Left),
		Top:    b.px(s.Top),
		Right:  b.px(s.Right),
		Bottom: b.px(s.Bottom),
	}
}

func (b *builder) px(l length) float64 {
	return b.metric.Px(l.Value)
}

// parseEnum looks up name among the first n values of an enum by
// their String, ignoring case. The empty name is the zero value.
func parseEnum[T interface {
	~uint8
	String() string
}](name string, n int) (T, error) {
	if name == "" {
		return 0, nil
	}
	for i := 0; i < n; i++ {
		if v := T(i); strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", name)
}
