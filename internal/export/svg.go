// Package export renders stored runs as standalone SVG images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/sahalpk007/inertia/internal/sim"
	"github.com/sahalpk007/inertia/internal/store"
)

// RunToSVG draws every object's trajectory across the arena: one polyline
// per object plus a disc at its final position. Colors cycle through the
// launch palette in object order.
func RunToSVG(rec *store.Recording, arenaW, arenaH int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#08080f"/>
`, arenaW, arenaH, arenaW, arenaH))

	writeStars(&sb, arenaW, arenaH)

	for i, id := range objectOrder(rec) {
		color := sim.Palette[i%len(sim.Palette)]
		writeTrajectory(&sb, rec, id, color)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeStars(sb *strings.Builder, w, h int) {
	sb.WriteString(`<g fill="#44446a">` + "\n")
	for i := 1; i <= 64; i++ {
		fx := math.Mod(float64(i)*0.6180339887498949, 1)
		fy := math.Mod(float64(i)*0.7548776662466927, 1)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1"/>`+"\n",
			fx*float64(w), fy*float64(h)))
	}
	sb.WriteString("</g>\n")
}

// objectOrder returns object ids by first appearance, so colors are stable.
func objectOrder(rec *store.Recording) []string {
	seen := make(map[string]bool)
	var order []string
	for _, f := range rec.Frames {
		for _, o := range f.Objects {
			if !seen[o.ID] {
				seen[o.ID] = true
				order = append(order, o.ID)
			}
		}
	}
	return order
}

func writeTrajectory(sb *strings.Builder, rec *store.Recording, id, color string) {
	var points []store.ObjectRecord
	for _, f := range rec.Frames {
		for _, o := range f.Objects {
			if o.ID == id {
				points = append(points, o)
			}
		}
	}
	if len(points) == 0 {
		return
	}

	if len(points) > 1 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.5" stroke-width="1.5" d="M`, color))
		for i, p := range points {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	last := points[len(points)-1]
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`+"\n",
		last.X, last.Y, sim.DefaultRadius, color))
}
