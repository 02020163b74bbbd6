// Package export renders recorded rounds as standalone SVG images.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/sim"
)

var trailColors = [2]string{"#50c8e6", "#e66ec8"}

type SVGOptions struct {
	Bounds arena.Bounds
	Radius float64 // player radius for the start and end markers
	Scale  float64
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Bounds: arena.DefaultBounds(), Radius: 25, Scale: 1}
}

// TrailsToSVG draws the arena, both players' paths over the round and a
// marker at every impact. The view includes the off-arena margin so a player
// pushed out is still visible.
func TrailsToSVG(frames []sim.Frame, opts SVGOptions) string {
	b := opts.Bounds
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	vw, vh := b.Width+2*b.Margin, b.Height+2*b.Margin
	width, height := vw*opts.Scale, vh*opts.Scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.0f %.0f %.0f %.0f">
<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="#12181a"/>
<rect x="0" y="0" width="%.0f" height="%.0f" fill="#243428" stroke="#5a6e5f" stroke-width="2"/>
`, width, height, -b.Margin, -b.Margin, vw, vh, -b.Margin, -b.Margin, vw, vh, b.Width, b.Height))

	if len(frames) > 0 {
		for p := range trailColors {
			sb.WriteString(trailPath(frames, p))
		}
		for _, f := range frames {
			if f.Impact == 0 {
				continue
			}
			x := (f.Players[0].X + f.Players[1].X) / 2
			y := (f.Players[0].Y + f.Players[1].Y) / 2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#ffaa3c" stroke-width="2"/>
`, x, y, 6+f.Impact*2))
		}
		first, last := frames[0], frames[len(frames)-1]
		for p, col := range trailColors {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-dasharray="4 3"/>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, first.Players[p].X, first.Players[p].Y, opts.Radius, col,
				last.Players[p].X, last.Players[p].Y, opts.Radius, col))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func trailPath(frames []sim.Frame, p int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" stroke-opacity="0.8" d="M`, trailColors[p]))
	for i, f := range frames {
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.Players[p].X, f.Players[p].Y))
	}
	sb.WriteString("\"/>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, frames []sim.Frame, opts SVGOptions) error {
	_, err := io.WriteString(w, TrailsToSVG(frames, opts))
	return err
}

func SaveSVG(path string, frames []sim.Frame, opts SVGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSVG(f, frames, opts)
}
