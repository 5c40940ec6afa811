package chord

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByName(fs []Fingering, name string) (Fingering, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Fingering{}, false
}

func TestCMajorKeepsCShapeUnchanged(t *testing.T) {
	fs := Fingerings(note.C, Major)

	f, ok := findByName(fs, "C (C Shape)")
	require.True(t, ok)
	assert.Equal(t, [6]Fret{Muted, 3, 2, 0, 1, 0}, f.Frets)
}

func TestCMajorMovesEShapeUpEightFrets(t *testing.T) {
	fs := Fingerings(note.C, Major)

	f, ok := findByName(fs, "C (E Shape)")
	require.True(t, ok)
	assert.Equal(t, [6]Fret{8, 10, 10, 9, 8, 8}, f.Frets)
}

func TestResultsFollowCatalogOrder(t *testing.T) {
	var names []string
	for _, f := range Fingerings(note.C, Major) {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"C (E Shape)", "C (A Shape)", "C (D Shape)", "C (C Shape)"}, names)

	names = names[:0]
	for _, f := range Fingerings(note.G, Sus2) {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Gsus2 (sus2 (A))", "Gsus2 (sus2 (E))", "Gsus2 (sus2 (D))"}, names)
}

func TestNaming(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Am (Em Shape)", Fingerings(note.A, Minor)[0].Name)
	assert.Equal("Dm7 (Em7)", Fingerings(note.D, Min7)[0].Name)
	assert.Equal("F#7 (E7 Shape)", Fingerings(note.FSharp, Dom7)[0].Name)
}

func TestUnknownTypeFallsBackToMajorShapes(t *testing.T) {
	got := Fingerings(note.G, Type("power"))
	want := Fingerings(note.G, Major)

	require.Len(t, got, len(want))
	for i := range got {
		assert.Equal(t, want[i].Frets, got[i].Frets)
	}
	// the requested tag still names the chord
	assert.Equal(t, "Gpower (E Shape)", got[0].Name)
}

func TestAllFretsStayInWindow(t *testing.T) {
	for _, typ := range Types() {
		for _, root := range note.All() {
			name := fmt.Sprintf("%v %v", root, typ)
			t.Run(name, func(t *testing.T) {
				fs := Fingerings(root, typ)
				assert.LessOrEqual(t, len(fs), len(Templates(typ)))
				for _, f := range fs {
					for _, fret := range f.Frets {
						if fret.Played() {
							assert.GreaterOrEqual(t, fret, MinFret)
							assert.LessOrEqual(t, fret, MaxFret)
						}
					}
				}
			})
		}
	}
}

func TestMutedStringsStayMuted(t *testing.T) {
	for _, root := range note.All() {
		fs := Fingerings(root, Maj7)
		assert.False(t, fs[0].Frets[1].Played())
		assert.False(t, fs[0].Frets[5].Played())
	}
}

func TestShapesPastTheWindowAreDropped(t *testing.T) {
	high := []Template{
		{Name: "high", Frets: [6]Fret{x, 15, 17, 17, 16, x}, Root: note.C},
		{Name: "low", Frets: [6]Fret{0, 2, 2, 1, 0, 0}, Root: note.E},
	}

	fs := fingerings(note.C, Major, high)
	require.Len(t, fs, 2)

	// B is 11 semitones above C, pushing "high" to fret 28
	fs = fingerings(note.B, Major, high)
	require.Len(t, fs, 1)
	assert.Equal(t, "B (low)", fs[0].Name)
}

func TestEveryShapePastTheWindowYieldsEmptyNotError(t *testing.T) {
	high := []Template{
		{Name: "a", Frets: [6]Fret{x, 15, 17, 17, 17, 15}, Root: note.A},
		{Name: "b", Frets: [6]Fret{15, 17, 17, 16, 15, 15}, Root: note.E},
	}
	// D is 5 above A and 10 above E
	fs := fingerings(note.D, Major, high)
	assert.NotNil(t, fs)
	assert.Empty(t, fs)
}

func TestLookupEchoesTuning(t *testing.T) {
	dropD, ok := tuning.Lookup("Drop D")
	require.True(t, ok)

	chart := Lookup(note.C, Major, dropD)
	assert := assert.New(t)
	assert.False(chart.StandardTuning)
	assert.Equal(dropD, chart.Tuning)
	assert.Equal(Fingerings(note.C, Major), chart.Fingerings)
	assert.True(Lookup(note.C, Major, tuning.Standard).StandardTuning)
}

func TestBaseFret(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Fingering{Frets: [6]Fret{Muted, 3, 2, 0, 1, 0}}.BaseFret())
	assert.Equal(8, Fingering{Frets: [6]Fret{8, 10, 10, 9, 8, 8}}.BaseFret())
	assert.Equal(1, Fingering{Frets: [6]Fret{0, 0, 0, 0, 0, 0}}.BaseFret())
	assert.Equal(3, Fingering{Frets: [6]Fret{Muted, 3, 5, 5, 5, 3}}.BaseFret())
}

func TestSoundingNotesOfOpenC(t *testing.T) {
	f, ok := findByName(Fingerings(note.C, Major), "C (C Shape)")
	require.True(t, ok)

	var got []note.PitchClass
	for _, sn := range f.Sounding(tuning.Standard) {
		got = append(got, sn.Note)
	}
	assert.Equal(t, []note.PitchClass{note.C, note.E, note.G, note.C, note.E}, got)
	assert.Equal(t, 5, f.Sounding(tuning.Standard)[0].String)
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"Major": Major,
		"maj":   Major,
		"M":     Major,
		"m":     Minor,
		"minor": Minor,
		"7":     Dom7,
		"maj7":  Maj7,
		"madd9": MinAdd9,
	}
	for in, want := range cases {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseType("13")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestSeventeenTypesAllCatalogued(t *testing.T) {
	assert.Len(t, Types(), 17)
	for _, typ := range Types() {
		assert.True(t, typ.Known(), string(typ))
		n := len(Templates(typ))
		assert.True(t, n >= 1 && n <= 4, string(typ))
	}
}

func TestFingeringJSON(t *testing.T) {
	f := Fingering{Name: "C (C Shape)", Frets: [6]Fret{Muted, 3, 2, 0, 1, 0}}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"C (C Shape)","frets":["x",3,2,0,1,0]}`, string(data))

	var back Fingering
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, f, back)

	var bad Fret
	assert.Error(t, json.Unmarshal([]byte(`"o"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`-2`), &bad))
}
