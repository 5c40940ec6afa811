package chord

import "github.com/jsphweid/fretdex/note"

// Template frets are offsets for Root under standard tuning, low E first.
type Template struct {
	Name  string
	Frets [6]Fret
	Root  note.PitchClass
}

// Authoring order matters: it is the order results are returned in.
var shapes = map[Type][]Template{
	Major: {
		{Name: "E Shape", Frets: [6]Fret{0, 2, 2, 1, 0, 0}, Root: note.E},
		{Name: "A Shape", Frets: [6]Fret{x, 0, 2, 2, 2, 0}, Root: note.A},
		{Name: "D Shape", Frets: [6]Fret{x, x, 0, 2, 3, 2}, Root: note.D},
		{Name: "C Shape", Frets: [6]Fret{x, 3, 2, 0, 1, 0}, Root: note.C},
	},
	Minor: {
		{Name: "Em Shape", Frets: [6]Fret{0, 2, 2, 0, 0, 0}, Root: note.E},
		{Name: "Am Shape", Frets: [6]Fret{x, 0, 2, 2, 1, 0}, Root: note.A},
		{Name: "Dm Shape", Frets: [6]Fret{x, x, 0, 2, 3, 1}, Root: note.D},
	},
	Dom7: {
		{Name: "E7 Shape", Frets: [6]Fret{0, 2, 0, 1, 0, 0}, Root: note.E},
		{Name: "A7 Shape", Frets: [6]Fret{x, 0, 2, 0, 2, 0}, Root: note.A},
		{Name: "D7 Shape", Frets: [6]Fret{x, x, 0, 2, 1, 2}, Root: note.D},
	},
	Maj7: {
		{Name: "Emaj7", Frets: [6]Fret{0, x, 1, 1, 0, x}, Root: note.E},
		{Name: "Amaj7", Frets: [6]Fret{x, 0, 2, 1, 2, 0}, Root: note.A},
		{Name: "Dmaj7", Frets: [6]Fret{x, x, 0, 2, 2, 2}, Root: note.D},
		{Name: "Cmaj7", Frets: [6]Fret{x, 3, 2, 0, 0, 0}, Root: note.C},
	},
	Min7: {
		{Name: "Em7", Frets: [6]Fret{0, 2, 0, 0, 0, 0}, Root: note.E},
		{Name: "Am7", Frets: [6]Fret{x, 0, 2, 0, 1, 0}, Root: note.A},
		{Name: "Dm7", Frets: [6]Fret{x, x, 0, 2, 1, 1}, Root: note.D},
	},
	Dim: {
		{Name: "dim Triad", Frets: [6]Fret{x, x, 0, 1, 3, 1}, Root: note.D},
		{Name: "dim Triad (A)", Frets: [6]Fret{x, 0, 1, 2, 1, x}, Root: note.A},
	},
	Dim7: {
		{Name: "dim7 (E)", Frets: [6]Fret{0, x, 2, 3, 2, x}, Root: note.E},
		{Name: "dim7 (A)", Frets: [6]Fret{x, 0, 1, 2, 1, x}, Root: note.A},
	},
	Aug: {
		{Name: "aug (E)", Frets: [6]Fret{0, x, 2, 1, 1, 0}, Root: note.E},
		{Name: "aug (A)", Frets: [6]Fret{x, 0, 3, 2, 2, 1}, Root: note.A},
	},
	Six: {
		{Name: "E6", Frets: [6]Fret{0, 2, 2, 1, 2, 0}, Root: note.E},
		{Name: "A6", Frets: [6]Fret{x, 0, 2, 2, 2, 2}, Root: note.A},
	},
	Min6: {
		{Name: "Em6", Frets: [6]Fret{0, 2, 2, 0, 2, 0}, Root: note.E},
		{Name: "Am6", Frets: [6]Fret{x, 0, 2, 2, 1, 2}, Root: note.A},
	},
	Add9: {
		{Name: "add9 (E)", Frets: [6]Fret{0, 2, 4, 1, 0, 0}, Root: note.E},
		{Name: "add9 (A)", Frets: [6]Fret{x, 0, 2, 4, 2, 0}, Root: note.A},
	},
	MinAdd9: {
		{Name: "madd9 (E)", Frets: [6]Fret{0, 2, 4, 0, 0, 0}, Root: note.E},
		{Name: "madd9 (A)", Frets: [6]Fret{x, 0, 2, 4, 1, 0}, Root: note.A},
	},
	Sus2: {
		{Name: "sus2 (A)", Frets: [6]Fret{x, 0, 2, 2, 0, 0}, Root: note.A},
		{Name: "sus2 (E)", Frets: [6]Fret{0, 2, 2, x, x, x}, Root: note.E},
		{Name: "sus2 (D)", Frets: [6]Fret{x, x, 0, 2, 3, 0}, Root: note.D},
	},
	Sus4: {
		{Name: "sus4 (E)", Frets: [6]Fret{0, 2, 2, 2, 0, 0}, Root: note.E},
		{Name: "sus4 (A)", Frets: [6]Fret{x, 0, 2, 2, 3, 0}, Root: note.A},
		{Name: "sus4 (D)", Frets: [6]Fret{x, x, 0, 2, 3, 3}, Root: note.D},
	},
	Dom9: {
		{Name: "9 (A)", Frets: [6]Fret{x, 0, 2, 0, 0, 0}, Root: note.A},
		{Name: "9 (E)", Frets: [6]Fret{0, x, 0, 1, 0, 2}, Root: note.E},
	},
	Min9: {
		{Name: "m9 (A)", Frets: [6]Fret{x, 0, 2, 0, 0, 3}, Root: note.A},
		{Name: "m9 (E)", Frets: [6]Fret{0, 2, 0, 0, 0, 2}, Root: note.E},
	},
	Maj9: {
		{Name: "maj9 (A)", Frets: [6]Fret{x, 0, 2, 1, 0, 0}, Root: note.A},
	},
}

// Templates returns the shapes for t in catalog order. Unknown types get
// the Major shapes.
func Templates(t Type) []Template {
	if !t.Known() {
		t = Major
	}
	list := shapes[t]
	res := make([]Template, len(list))
	copy(res, list)
	return res
}
