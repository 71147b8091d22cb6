// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The flexdump command measures flex containers described in scene files
and prints the resolved layout.

Usage:

	flexdump [flags] [scene.json ...]

Each scene file holds a scene object or an array of them. Without arguments,
scenes are read from standard input.

A scene describes a container, the specs it is measured with and its items:

	{
		"name": "toolbar",
		"width": {"size": 360, "mode": "exactly"},
		"height": {"mode": "unspecified"},
		"container": {"direction": "row", "justifyContent": "spaceBetween"},
		"items": [
			{"width": 48, "height": 48},
			{"text": "Title", "grow": 1, "margin": {"left": 16}},
			{"width": "48dp", "height": "match"}
		]
	}

Lengths are numbers or strings with a px, dp or sp suffix; numbers are dp.
The sizes "wrap" and "match" request the content size and the parent size.
Text items are measured in terminal cells unless "font" selects "go" (the Go
Regular font), "shaped" (Go Regular shaped with HarfBuzz) or "roboto" (Roboto
shaped with HarfBuzz) at "fontSize" sp, 14 by default.

The -format flag selects the output: json (item frames), ascii (boxes drawn in
text cells, one cell per pixel) or png (one image per scene in the -o directory).

The -density flag sets the pixels per dp and sp.

The -v flag logs solver diagnostics to standard error.
`
