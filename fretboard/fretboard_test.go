package fretboard

import (
	"testing"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShapesTheGrid(t *testing.T) {
	b := Scale(tuning.Standard, note.A, scale.PentatonicMinor, DefaultFrets, ModeNotes)

	assert := assert.New(t)
	require.Len(t, b.Strings, 6)
	assert.Equal(1, b.Strings[0].Number)
	assert.Equal(note.E, b.Strings[0].Open)
	assert.Equal(6, b.Strings[5].Number)
	for _, s := range b.Strings {
		assert.Len(s.Cells, DefaultFrets+1)
	}
	assert.Equal([]int{3, 5, 7, 9, 12, 15}, b.Inlays)
}

func TestHighlightsAndRoot(t *testing.T) {
	b := Scale(tuning.Standard, note.A, scale.PentatonicMinor, 12, ModeNotes)
	low := b.Strings[5]

	assert := assert.New(t)
	// low E: open E is in A minor pentatonic, F is not, A at 5 is the root
	assert.True(low.Cells[0].Highlighted)
	assert.Equal("E", low.Cells[0].Label)
	assert.False(low.Cells[1].Highlighted)
	assert.Empty(low.Cells[1].Label)
	assert.True(low.Cells[5].Root)
	assert.True(low.Cells[5].Highlighted)
}

func TestDegreeLabels(t *testing.T) {
	b := Scale(tuning.Standard, note.A, scale.PentatonicMinor, 12, ModeDegrees)
	low := b.Strings[5]

	assert := assert.New(t)
	assert.Equal("5", low.Cells[0].Label)
	assert.Equal("1", low.Cells[5].Label)
	assert.Equal("♭3", low.Cells[8].Label)
}

func TestRootFlagIsIndependentOfHighlight(t *testing.T) {
	b := Build(tuning.Standard, note.C, nil, 5, ModeNotes)
	a := b.Strings[4]
	assert.True(t, a.Cells[3].Root)
	assert.False(t, a.Cells[3].Highlighted)
}

func TestInlaysFollowFretCount(t *testing.T) {
	b := Build(tuning.Standard, note.C, nil, 8, ModeNotes)
	assert.Equal(t, []int{3, 5, 7}, b.Inlays)
}

func TestPositions(t *testing.T) {
	pos := Positions(tuning.Standard, note.A, 15)
	assert.Equal(t, []int{5}, pos[0])
	assert.Equal(t, []int{0, 12}, pos[1])
	assert.Equal(t, []int{5}, pos[5])
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Degrees")
	require.NoError(t, err)
	assert.Equal(t, ModeDegrees, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeNotes, m)

	_, err = ParseMode("tab")
	assert.Error(t, err)
}
