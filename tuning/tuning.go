package tuning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
)

const StringCount = 6

var ErrStringCount = fmt.Errorf("tuning needs exactly %d strings", StringCount)
var ErrUnknownPreset = errors.New("unknown tuning")

// Tuning holds the open note of each string, index 0 = string 6 (low).
type Tuning [StringCount]note.PitchClass

type Preset struct {
	Name  string `json:"name"`
	Notes Tuning `json:"notes"`
}

var Standard = Tuning{note.E, note.A, note.D, note.G, note.B, note.E}

var presets = []Preset{
	{Name: "Standard", Notes: Standard},
	{Name: "Drop D", Notes: Tuning{note.D, note.A, note.D, note.G, note.B, note.E}},
	{Name: "DADGAD", Notes: Tuning{note.D, note.A, note.D, note.G, note.A, note.D}},
	{Name: "Open G", Notes: Tuning{note.D, note.G, note.D, note.G, note.B, note.D}},
	{Name: "Half-Step Down", Notes: Tuning{note.DSharp, note.GSharp, note.CSharp, note.FSharp, note.ASharp, note.DSharp}},
}

func Presets() []Preset {
	res := make([]Preset, len(presets))
	copy(res, presets)
	return res
}

func Lookup(name string) (Tuning, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Notes, true
		}
	}
	return Tuning{}, false
}

// IsStandard is the trigger for the "shapes assume EADGBE" warning.
func (t Tuning) IsStandard() bool {
	return t == Standard
}

// Name returns the preset name, or "Custom".
func (t Tuning) Name() string {
	for _, p := range presets {
		if p.Notes == t {
			return p.Name
		}
	}
	return "Custom"
}

func (t Tuning) String() string {
	parts := make([]string, StringCount)
	for i, n := range t {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

// FromNotes validates a caller-supplied string list.
func FromNotes(notes []note.PitchClass) (Tuning, error) {
	var t Tuning
	if len(notes) != StringCount {
		return t, fmt.Errorf("%w, got %d", ErrStringCount, len(notes))
	}
	for i, n := range notes {
		if !n.Valid() {
			return t, fmt.Errorf("string %d: %w: %d", StringCount-i, note.ErrUnknownNote, uint8(n))
		}
		t[i] = n
	}
	return t, nil
}

// Parse accepts a preset name ("Drop D") or six notes low to high,
// separated by spaces or commas ("D A D G B E").
func Parse(s string) (Tuning, error) {
	if t, ok := Lookup(s); ok {
		return t, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 1 {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	var notes []note.PitchClass
	for _, f := range fields {
		n, err := note.Parse(f)
		if err != nil {
			return Tuning{}, fmt.Errorf("parsing tuning %q: %w", s, err)
		}
		notes = append(notes, n)
	}
	return FromNotes(notes)
}
