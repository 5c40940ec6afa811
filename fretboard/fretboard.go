// Package fretboard computes the highlight grid a fretboard display draws.
package fretboard

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
)

// Mode picks what a highlighted cell is labelled with.
type Mode string

const (
	ModeNotes   Mode = "notes"
	ModeDegrees Mode = "degrees"
)

const (
	DefaultFrets = 15
	MaxFrets     = 24
)

var Inlays = []int{3, 5, 7, 9, 12, 15}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "notes", "note":
		return ModeNotes, nil
	case "degrees", "degree", "solfege":
		return ModeDegrees, nil
	}
	return "", fmt.Errorf("unknown display mode %q", s)
}

type Cell struct {
	Fret        int             `json:"fret"`
	Note        note.PitchClass `json:"note"`
	Highlighted bool            `json:"highlighted"`
	Root        bool            `json:"root"`
	// Label is empty for cells that are not highlighted.
	Label string `json:"label,omitempty"`
}

type String struct {
	// Number is 1 for the highest string, 6 for the lowest.
	Number int             `json:"number"`
	Open   note.PitchClass `json:"open"`
	Cells  []Cell          `json:"cells"`
}

type Board struct {
	Root    note.PitchClass `json:"root"`
	Frets   int             `json:"frets"`
	Mode    Mode            `json:"mode"`
	Strings []String        `json:"strings"`
	Inlays  []int           `json:"inlays"`
}

// Build lays out frets 0..frets on every string, highest string first.
func Build(tun tuning.Tuning, root note.PitchClass, highlight []note.PitchClass, frets int, mode Mode) Board {
	if frets < 0 {
		frets = 0
	}
	lit := make(map[note.PitchClass]bool, len(highlight))
	for _, n := range highlight {
		lit[n] = true
	}

	b := Board{Root: root, Frets: frets, Mode: mode}
	for _, pos := range Inlays {
		if pos <= frets {
			b.Inlays = append(b.Inlays, pos)
		}
	}

	for i := len(tun) - 1; i >= 0; i-- {
		s := String{Number: len(tun) - i, Open: tun[i]}
		for fret := 0; fret <= frets; fret++ {
			n := note.AtFret(tun[i], fret)
			c := Cell{Fret: fret, Note: n, Highlighted: lit[n], Root: n == root}
			if c.Highlighted {
				c.Label = label(root, n, mode)
			}
			s.Cells = append(s.Cells, c)
		}
		b.Strings = append(b.Strings, s)
	}
	return b
}

// Scale highlights the members of a scale.
func Scale(tun tuning.Tuning, root note.PitchClass, t scale.Type, frets int, mode Mode) Board {
	return Build(tun, root, scale.Notes(root, t), frets, mode)
}

func label(root note.PitchClass, n note.PitchClass, mode Mode) string {
	if mode == ModeDegrees {
		return scale.Degree(root, n)
	}
	return n.String()
}

// Positions lists every (string, fret) where n sounds, low string first.
func Positions(tun tuning.Tuning, n note.PitchClass, frets int) [][]int {
	res := make([][]int, len(tun))
	for i, open := range tun {
		for fret := note.Distance(open, n); fret <= frets; fret += note.Count {
			res[i] = append(res[i], fret)
		}
	}
	return res
}
