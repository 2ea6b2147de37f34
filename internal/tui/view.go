package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/sahalpk007/inertia/internal/sim"
)

func (a *App) styles() (header, label, value, accent, muted lipgloss.Style) {
	header = lipgloss.NewStyle().Foreground(a.theme.Accent).Bold(true).MarginBottom(1)
	label = lipgloss.NewStyle().Foreground(a.theme.Muted).Width(10)
	value = lipgloss.NewStyle().Foreground(a.theme.Text)
	accent = lipgloss.NewStyle().Foreground(a.theme.Accent)
	muted = lipgloss.NewStyle().Foreground(a.theme.Muted)
	return
}

func (a *App) statsView() string {
	header, label, value, accent, muted := a.styles()
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(a.theme.Muted).
		Padding(1, 2).
		Width(statsWidth)

	lv := a.levelCtl.Current()
	p := a.world.Params()

	var s strings.Builder
	s.WriteString(header.Render("INERTIA") + "\n")
	s.WriteString(accent.Render(fmt.Sprintf("Level %d/%d: %s", a.levelCtl.Index()+1, a.levelCtl.Count(), lv.Name)) + "\n")
	s.WriteString(muted.Render(wrap(lv.Goal, statsWidth-6)) + "\n\n")

	status := "WAITING — drag to launch"
	if a.world.Playing() {
		status = "RUNNING"
	} else if len(a.world.Objects()) > 0 {
		status = "PAUSED"
	}
	s.WriteString(value.Render(status) + "\n\n")

	s.WriteString(label.Render("Score") + value.Render(fmt.Sprintf("%.0f", a.world.Score())) + "\n")
	s.WriteString(label.Render("Objects") + value.Render(fmt.Sprintf("%d", len(a.world.Objects()))) + "\n")
	s.WriteString(label.Render("Frame") + value.Render(fmt.Sprintf("%d", a.world.Frame())) + "\n\n")

	s.WriteString(label.Render("Friction") + value.Render(frictionBar(p.Friction)) + "\n")
	gravity := "off"
	if p.Gravity {
		gravity = fmt.Sprintf("on (%.1f/frame)", sim.GravityAccel)
	}
	s.WriteString(label.Render("Gravity") + value.Render(gravity) + "\n")

	if g := a.world.Gesture(); g != nil {
		s.WriteString("\n" + accent.Render(fmt.Sprintf("Power %.1f", g.Power())) + "\n")
	}

	if len(a.speedHistory) > 1 {
		chart := asciigraph.Plot(a.speedHistory,
			asciigraph.Height(4),
			asciigraph.Width(statsWidth-10),
			asciigraph.Caption("mean speed"))
		s.WriteString("\n" + muted.Render(chart) + "\n")
	}

	s.WriteString(muted.Render("\n──────────────────\ndrag: launch  SP: pause\nR: reset  N: next level\nG: gravity  ←→: friction\nT: theme  ?: help  Q: quit"))
	return panel.Render(s.String())
}

func (a *App) helpView() string {
	_, _, value, accent, muted := a.styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.Accent).
		Padding(1, 3)

	var s strings.Builder
	s.WriteString(accent.Render("HOW TO PLAY") + "\n\n")
	s.WriteString(value.Render("Click and drag on the canvas, then release\nto launch a disc. The drag vector sets the\nlaunch velocity; longer drags fly faster.") + "\n\n")
	s.WriteString(value.Render("With no friction or gravity a moving disc\nkeeps its velocity forever — Newton's First\nLaw. Walls bounce discs back with a 20%\nspeed loss.") + "\n\n")
	s.WriteString(muted.Render("space  pause / resume\nr      clear all discs\nn      advance level (stops at the last)\n1-4    jump to a level\ng      toggle gravity\n← →    friction down / up\nt      cycle theme\nq      quit\n\npress ? to close"))
	return box.Render(s.String())
}

func frictionBar(f float64) string {
	const width = 12
	filled := int(f / sim.MaxFriction * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %.3f", strings.Repeat("=", filled), strings.Repeat("-", width-filled), f)
}

// wrap breaks text at word boundaries to fit the stats panel.
func wrap(text string, width int) string {
	if width < 10 {
		return text
	}
	words := strings.Fields(text)
	var lines []string
	line := ""
	for _, w := range words {
		if line != "" && len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		if line == "" {
			line = w
		} else {
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
