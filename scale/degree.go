package scale

import (
	"github.com/jsphweid/fretdex/note"
)

var degrees = [note.Count]string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♭6", "6", "♭7", "7"}

// Degree labels n by its interval above root, in flat notation.
func Degree(root note.PitchClass, n note.PitchClass) string {
	return degrees[note.Distance(root, n)]
}

// Degrees labels each note of a scale relative to its first note.
func Degrees(notes []note.PitchClass) []string {
	if len(notes) == 0 {
		return nil
	}
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = Degree(notes[0], n)
	}
	return res
}
