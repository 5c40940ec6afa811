// Package render turns computed fretboards and fingerings into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
)

// DiagramFrets is how many frets a chord diagram shows below its base fret.
const DiagramFrets = 5

var (
	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
)

const cellWidth = 4

func pad(s string) string {
	return lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, s)
}

// Fretboard draws one line per string, highest string on top.
func Fretboard(b fretboard.Board) string {
	var sb strings.Builder

	sb.WriteString("    ")
	for fret := 0; fret <= b.Frets; fret++ {
		sb.WriteString(headerStyle.Render(pad(fmt.Sprint(fret))))
	}
	sb.WriteString("\n")

	for _, s := range b.Strings {
		sb.WriteString(fmt.Sprintf("%-3v|", s.Open))
		for _, c := range s.Cells {
			cell := pad("-")
			switch {
			case c.Highlighted && c.Root:
				cell = rootStyle.Render(pad(c.Label))
			case c.Highlighted:
				cell = noteStyle.Render(pad(c.Label))
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("    ")
	for fret := 0; fret <= b.Frets; fret++ {
		mark := ""
		for _, pos := range b.Inlays {
			if pos == fret {
				mark = "•"
			}
		}
		sb.WriteString(headerStyle.Render(pad(mark)))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Diagram draws a vertical chord box, low E on the left, DiagramFrets
// frets starting at the fingering's base fret.
func Diagram(f chord.Fingering) string {
	base := f.BaseFret()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(f.Name))
	sb.WriteString("\n")

	marks := make([]string, len(f.Frets))
	for i, fret := range f.Frets {
		switch {
		case !fret.Played():
			marks[i] = mutedStyle.Render("x")
		case fret == 0:
			marks[i] = openStyle.Render("o")
		default:
			marks[i] = " "
		}
	}
	sb.WriteString(strings.Join(marks, " "))
	sb.WriteString("\n")

	width := 2*len(f.Frets) - 1
	if base == 1 {
		sb.WriteString(strings.Repeat("=", width))
	} else {
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(fmt.Sprintf(" %vfr", base))
	}
	sb.WriteString("\n")

	for row := 0; row < DiagramFrets; row++ {
		cells := make([]string, len(f.Frets))
		for i, fret := range f.Frets {
			cells[i] = "|"
			if fret.Played() && fret > 0 && int(fret) == base+row {
				cells[i] = "●"
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Diagrams lays several chord boxes side by side.
func Diagrams(fs []chord.Fingering) string {
	boxes := make([]string, 0, len(fs))
	for _, f := range fs {
		boxes = append(boxes, lipgloss.NewStyle().PaddingRight(4).Render(Diagram(f)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
