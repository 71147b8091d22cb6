// SPDX-License-Identifier: Unlicense OR MIT

// The flexdump command measures flex layouts described in JSON
// scene files. Run flexdump -help for details.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"flexlayout.org/canvas"
	"flexlayout.org/layout"
	"flexlayout.org/unit"
)

var (
	format  = flag.String("format", "json", "output format: json, ascii or png")
	destDir = flag.String("o", ".", "output directory for png images")
	density = flag.Float64("density", 1, "pixels per dp and sp")
	scale   = flag.Int("scale", 1, "magnification of png images")
	verbose = flag.Bool("v", false, "log solver diagnostics")
)

var formats = []string{"json", "ascii", "png"}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "flexdump: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(w io.Writer, args []string) error {
	if !slices.Contains(formats, *format) {
		return fmt.Errorf("unknown format %q", *format)
	}
	if *density <= 0 {
		return errors.New("density must be positive")
	}
	if *verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	scenes, err := readScenes(args)
	if err != nil {
		return err
	}
	outs := make([][]byte, len(scenes))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range scenes {
		i, s := i, s
		g.Go(func() error {
			out, err := render(s)
			outs[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, out := range outs {
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func readScenes(args []string) ([]scene, error) {
	if len(args) == 0 {
		return decodeScenes(os.Stdin, "stdin")
	}
	var scenes []scene
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		ss, err := decodeScenes(f, base)
		f.Close()
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, ss...)
	}
	return scenes, nil
}

// result is the json output for a scene.
type result struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Items  []frame `json:"items"`
}

type frame struct {
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Baseline float64 `json:"baseline,omitempty"`
}

// render measures a scene and returns its output. Png images are
// written to the output directory and reported by name.
func render(s scene) ([]byte, error) {
	b := newBuilder(unit.Metric{PxPerDp: *density, PxPerSp: *density})
	c, ws, hs, err := b.build(s)
	if err != nil {
		return nil, err
	}
	size := c.Measure(ws, hs)
	switch *format {
	case "json":
		res := result{Name: s.Name, Width: size.Width, Height: size.Height}
		for _, it := range c.Items {
			f := frame{Left: it.Left, Top: it.Top, Width: it.Width, Height: it.Height}
			if it.Baseline != layout.UnsetBaseline {
				f.Baseline = it.Baseline
			}
			res.Items = append(res.Items, f)
		}
		out, err := json.MarshalIndent(res, "", "\t")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "ascii":
		cv := canvas.New(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
		cv.Draw(c)
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s %v\n%s\n", s.Name, size, cv)
		return buf.Bytes(), nil
	case "png":
		img := canvas.Snapshot(c, size, canvas.Options{Scale: *scale, Labels: true})
		path := filepath.Join(*destDir, s.Name+".png")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if err := canvas.WritePNG(f, img); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		return []byte(path + "\n"), nil
	default:
		panic("unreachable")
	}
}
