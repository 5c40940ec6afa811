package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chordTuning, chordMidi, chordShape, chordStrum, chordDiagram = "", "", 1, 40, false
	boardTuning, boardFrets, boardDegrees = "", 0, false
	inspectRoot, inspectScale = "", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFretCommand(t *testing.T) {
	out, _, err := runCLI(t, "fret", "E", "5")
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
}

func TestFretCommandRejectsNegative(t *testing.T) {
	_, _, err := runCLI(t, "fret", "E", "-1")
	assert.Error(t, err)
}

func TestScaleCommand(t *testing.T) {
	out, _, err := runCLI(t, "scale", "C", "Major")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, strings.Fields(lines[1]))
}

func TestScaleCommandAcceptsUnquotedTwoWordType(t *testing.T) {
	out, _, err := runCLI(t, "scale", "A", "pentatonic", "minor")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, strings.Fields(strings.Split(out, "\n")[0]))
}

func TestDegreeCommand(t *testing.T) {
	out, _, err := runCLI(t, "degree", "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "♭3\n", out)
}

func TestDegreeCommandRejectsFlats(t *testing.T) {
	_, _, err := runCLI(t, "degree", "A", "Bb")
	assert.ErrorIs(t, err, note.ErrUnknownNote)
}

func TestChordCommand(t *testing.T) {
	out, stderr, err := runCLI(t, "chord", "C", "Major")
	require.NoError(t, err)
	assert.Contains(t, out, "C (E Shape)")
	assert.Contains(t, out, "8 10 10 9 8 8")
	assert.Contains(t, out, "x 3 2 0 1 0")
	assert.Empty(t, stderr)
}

func TestChordCommandWarnsOnOtherTunings(t *testing.T) {
	_, stderr, err := runCLI(t, "chord", "G", "7", "--tuning", "Drop D")
	require.NoError(t, err)
	assert.Contains(t, stderr, StandardTuningWarning)
}

func TestChordCommandRejectsUnknownType(t *testing.T) {
	_, _, err := runCLI(t, "chord", "C", "13")
	assert.Error(t, err)
}

func TestChordCommandWritesMidi(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.mid")
	_, _, err := runCLI(t, "chord", "C", "Major", "--midi", path, "--shape", "4")
	require.NoError(t, err)

	s, err := midi.ReadMidiFile(path)
	require.NoError(t, err)
	assert.Equal(t, []note.PitchClass{note.C, note.E, note.G}, midi.PitchClasses(s))

	out, _, err := runCLI(t, "inspect", path, "--root", "A")
	require.NoError(t, err)
	assert.Equal(t, "C  ♭3\nE  5\nG  ♭7\n", out)

	out, _, err = runCLI(t, "inspect", path, "--root", "A", "--scale", "Major")
	require.NoError(t, err)
	assert.Equal(t, "C  ♭3 outside\nE  5\nG  ♭7 outside\n", out)

	_, _, err = runCLI(t, "inspect", path, "--scale", "Blues")
	assert.ErrorIs(t, err, scale.ErrUnknownType)
}

func TestChordCommandRejectsBadShapeIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.mid")
	_, _, err := runCLI(t, "chord", "C", "Major", "--midi", path, "--shape", "9")
	assert.Error(t, err)
}

func TestFretboardCommand(t *testing.T) {
	out, _, err := runCLI(t, "fretboard", "A", "Pentatonic", "Minor", "--frets", "12", "--degrees")
	require.NoError(t, err)
	assert.Contains(t, out, "A Pentatonic Minor (Standard)")
	assert.Contains(t, out, "♭3")
}

func TestTuningsCommand(t *testing.T) {
	out, _, err := runCLI(t, "tunings")
	require.NoError(t, err)
	assert.Contains(t, out, "DADGAD")
	assert.Contains(t, out, "D# G# C# F# A# D#")
}
