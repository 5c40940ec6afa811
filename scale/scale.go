package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
)

type Type int

const (
	Major Type = iota
	Minor
	PentatonicMajor
	PentatonicMinor
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Locrian
)

var ErrUnknownType = errors.New("unknown scale type")

// Scale definitions - intervals from root (semitones)
var intervals = map[Type][]int{
	Major:           {0, 2, 4, 5, 7, 9, 11},
	Minor:           {0, 2, 3, 5, 7, 8, 10},
	PentatonicMajor: {0, 2, 4, 7, 9},
	PentatonicMinor: {0, 3, 5, 7, 10},
	Dorian:          {0, 2, 3, 5, 7, 9, 10},
	Phrygian:        {0, 1, 3, 5, 7, 8, 10},
	Lydian:          {0, 2, 4, 6, 7, 9, 11},
	Mixolydian:      {0, 2, 4, 5, 7, 9, 10},
	Locrian:         {0, 1, 3, 5, 6, 8, 10},
}

var typeNames = []string{
	"Major", "Minor", "Pentatonic Major", "Pentatonic Minor",
	"Dorian", "Phrygian", "Lydian", "Mixolydian", "Locrian",
}

// Types lists every scale type in display order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Intervals returns a copy of the semitone offsets for t.
func Intervals(t Type) []int {
	src := intervals[t]
	res := make([]int, len(src))
	copy(res, src)
	return res
}

// Notes are the members of the scale in interval order, root first.
func Notes(root note.PitchClass, t Type) []note.PitchClass {
	offsets := intervals[t]
	res := make([]note.PitchClass, 0, len(offsets))
	for _, offset := range offsets {
		res = append(res, note.Transpose(root, offset))
	}
	return res
}

// Contains reports whether n is a member of the scale built on root.
func Contains(root note.PitchClass, t Type, n note.PitchClass) bool {
	diff := note.Distance(root, n)
	for _, offset := range intervals[t] {
		if offset == diff {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseType accepts "Pentatonic Minor", "pentatonic-minor" and similar.
func ParseType(s string) (Type, error) {
	want := normalize(s)
	for i, name := range typeNames {
		if normalize(name) == want {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
