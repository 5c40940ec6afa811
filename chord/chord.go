package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
)

// Type is a chord quality tag as shown to players.
type Type string

const (
	Major   Type = "Major"
	Minor   Type = "Minor"
	Dom7    Type = "7"
	Maj7    Type = "maj7"
	Min7    Type = "m7"
	Dim     Type = "dim"
	Dim7    Type = "dim7"
	Aug     Type = "aug"
	Six     Type = "6"
	Min6    Type = "m6"
	Add9    Type = "add9"
	MinAdd9 Type = "madd9"
	Sus2    Type = "sus2"
	Sus4    Type = "sus4"
	Dom9    Type = "9"
	Min9    Type = "m9"
	Maj9    Type = "maj9"
)

// playable fret window, inclusive
const (
	MinFret Fret = 0
	MaxFret Fret = 19
)

var ErrUnknownType = errors.New("unknown chord type")

var types = []Type{
	Major, Minor, Dom7, Maj7, Min7, Dim, Dim7, Aug,
	Six, Min6, Add9, MinAdd9, Sus2, Sus4, Dom9, Min9, Maj9,
}

func Types() []Type {
	res := make([]Type, len(types))
	copy(res, types)
	return res
}

// Known reports whether the catalog has shapes for t.
func (t Type) Known() bool {
	_, ok := shapes[t]
	return ok
}

// Suffix is what follows the root in a chord name: "" for Major, "m" for
// Minor, the tag itself otherwise.
func Suffix(t Type) string {
	switch t {
	case Major:
		return ""
	case Minor:
		return "m"
	default:
		return string(t)
	}
}

// ParseType matches the literal tags. "major"/"maj" and "minor"/"min" are
// also accepted in any case, as are "M" and "m".
func ParseType(s string) (Type, error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range types {
		if string(t) == trimmed {
			return t, nil
		}
	}
	switch trimmed {
	case "M":
		return Major, nil
	case "m":
		return Minor, nil
	}
	switch strings.ToLower(trimmed) {
	case "major", "maj":
		return Major, nil
	case "minor", "min":
		return Minor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

type Fingering struct {
	Name  string  `json:"name"`
	Frets [6]Fret `json:"frets"`
}

// Chart is a lookup result together with the tuning it was requested for.
// Shapes are only correct when StandardTuning is true.
type Chart struct {
	Root           note.PitchClass `json:"root"`
	Type           Type            `json:"type"`
	Tuning         tuning.Tuning   `json:"tuning"`
	StandardTuning bool            `json:"standard_tuning"`
	Fingerings     []Fingering     `json:"fingerings"`
}

// transpose moves a template so its root lands on root. ok is false when
// any fretted string leaves the playable window.
func transpose(tpl Template, root note.PitchClass) (frets [6]Fret, ok bool) {
	steps := Fret(note.Distance(tpl.Root, root))
	for i, f := range tpl.Frets {
		if !f.Played() {
			frets[i] = Muted
			continue
		}
		moved := f + steps
		if moved < MinFret || moved > MaxFret {
			return frets, false
		}
		frets[i] = moved
	}
	return frets, true
}

func fingerings(root note.PitchClass, t Type, templates []Template) []Fingering {
	res := make([]Fingering, 0, len(templates))
	for _, tpl := range templates {
		frets, ok := transpose(tpl, root)
		if !ok {
			continue
		}
		res = append(res, Fingering{
			Name:  fmt.Sprintf("%v%v (%v)", root, Suffix(t), tpl.Name),
			Frets: frets,
		})
	}
	return res
}

// Fingerings lists every playable shape of the chord in catalog order.
// Shapes that leave the fret window are dropped, so fewer results than
// templates is normal. Unknown types use the Major shapes.
func Fingerings(root note.PitchClass, t Type) []Fingering {
	return fingerings(root, t, Templates(t))
}

// Lookup is Fingerings plus the tuning echo callers need for diagrams. The
// tuning never changes the fret math.
func Lookup(root note.PitchClass, t Type, tun tuning.Tuning) Chart {
	return Chart{
		Root:           root,
		Type:           t,
		Tuning:         tun,
		StandardTuning: tun.IsStandard(),
		Fingerings:     Fingerings(root, t),
	}
}

// BaseFret is the fret a diagram should start at.
func (f Fingering) BaseFret() int {
	lowest := 0
	for _, fret := range f.Frets {
		if fret > 0 && (lowest == 0 || int(fret) < lowest) {
			lowest = int(fret)
		}
	}
	if lowest > 1 {
		return lowest
	}
	return 1
}

type StringNote struct {
	// String is the guitar string number, 6 = lowest.
	String int             `json:"string"`
	Fret   Fret            `json:"fret"`
	Note   note.PitchClass `json:"note"`
}

// Sounding lists the note each played string produces under tun, low
// string first.
func (f Fingering) Sounding(tun tuning.Tuning) []StringNote {
	var res []StringNote
	for i, fret := range f.Frets {
		if !fret.Played() {
			continue
		}
		res = append(res, StringNote{
			String: tuning.StringCount - i,
			Fret:   fret,
			Note:   note.AtFret(tun[i], int(fret)),
		})
	}
	return res
}

func (f Fingering) FretString() string {
	parts := make([]string, len(f.Frets))
	for i, fret := range f.Frets {
		parts[i] = fret.String()
	}
	return strings.Join(parts, " ")
}
