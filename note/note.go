// Package note holds the 12-tone pitch-class circle and the arithmetic on it.
package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/util"
)

// PitchClass is one of the 12 chromatic note names, 0 = C.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const Count = 12

var ErrUnknownNote = errors.New("unknown note")

// sharps only, the ordering is the circle
var names = [Count]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// All returns the 12 pitch classes starting at C.
func All() []PitchClass {
	res := make([]PitchClass, Count)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func Names() []string {
	res := make([]string, Count)
	copy(res, names[:])
	return res
}

func (p PitchClass) Valid() bool {
	return p < Count
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(p))
	}
	return names[p]
}

// Index is the position of p in the pitch-class ordering. It panics on a
// value outside the enumeration, which Parse never produces.
func Index(p PitchClass) int {
	if !p.Valid() {
		panic(fmt.Sprintf("note: index of invalid pitch class %d", uint8(p)))
	}
	return int(p)
}

// AtFret is the note sounded at fret on a string tuned to open.
func AtFret(open PitchClass, fret int) PitchClass {
	return Transpose(open, fret)
}

// Transpose shifts p by k semitones in either direction. k is reduced
// first so the sum cannot overflow.
func Transpose(p PitchClass, k int) PitchClass {
	return PitchClass(util.Mod(Index(p)+util.Mod(k, Count), Count))
}

// Distance counts semitones upward from one pitch class to another, 0..11.
func Distance(from PitchClass, to PitchClass) int {
	return util.Mod(Index(to)-Index(from), Count)
}

// Parse accepts one of the 12 canonical names. Flats are not accepted.
func Parse(s string) (PitchClass, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 0 {
		// "c#" and "C#" are the same note, but "♯" is not accepted
		trimmed = strings.ToUpper(trimmed[:1]) + trimmed[1:]
	}
	for i, name := range names {
		if name == trimmed {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownNote, s, strings.Join(Names(), " "))
}

func (p PitchClass) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNote, uint8(p))
	}
	return []byte(names[p]), nil
}

func (p *PitchClass) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
