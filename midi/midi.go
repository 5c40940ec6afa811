package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// E2 A2 D3 G3 B3 E4
var standardKeys = [tuning.StringCount]int{40, 45, 50, 55, 59, 64}

const (
	channel  = 0
	velocity = 100
	// 960 ticks per quarter note
	resolution = smf.MetricTicks(960)
)

// OpenKeys picks, for every string, the octave of its open note closest
// to the same string in standard tuning.
func OpenKeys(tun tuning.Tuning) [tuning.StringCount]int {
	var res [tuning.StringCount]int
	for i, n := range tun {
		// signed shift in -6..5
		shift := util.Mod(note.Distance(tuning.Standard[i], n)+6, note.Count) - 6
		res[i] = standardKeys[i] + shift
	}
	return res
}

// Pitches are the MIDI keys a fingering sounds, low string first.
func Pitches(tun tuning.Tuning, f chord.Fingering) []uint8 {
	open := OpenKeys(tun)
	var res []uint8
	for i, fret := range f.Frets {
		if !fret.Played() {
			continue
		}
		res = append(res, uint8(util.Clamp(open[i]+int(fret), 0, 127)))
	}
	return res
}

func PitchClass(key uint8) note.PitchClass {
	return note.PitchClass(key % note.Count)
}

// WriteChord writes a single-track SMF that strums keys in order, strum
// ticks apart, and releases them all after one bar.
func WriteChord(w io.Writer, keys []uint8, strum uint32) error {
	if len(keys) == 0 {
		return errors.New("no notes to write")
	}
	s := smf.New()
	s.TimeFormat = resolution

	var tr smf.Track
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = strum
		}
		tr.Add(delta, gomidi.NoteOn(channel, key, velocity))
	}
	tr.Add(4*resolution.Ticks4th(), gomidi.NoteOff(channel, keys[0]))
	for _, key := range keys[1:] {
		tr.Add(0, gomidi.NoteOff(channel, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

// WriteChordFile renders f under tun to path.
func WriteChordFile(path string, tun tuning.Tuning, f chord.Fingering, strum uint32) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %v: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %v: %w", path, cerr)
		}
	}()
	return WriteChord(out, Pitches(tun, f), strum)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s = &blank
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// PitchClasses collects the distinct sounding pitch classes of every
// note-on in s, in the order they first appear track by track.
func PitchClasses(s *smf.SMF) []note.PitchClass {
	var res []note.PitchClass
	seen := make(map[note.PitchClass]bool)
	for _, events := range s.Tracks {
		for _, event := range events {
			var ch, key, vel uint8
			if !event.Message.GetNoteOn(&ch, &key, &vel) || vel == 0 {
				continue
			}
			pc := PitchClass(key)
			if !seen[pc] {
				seen[pc] = true
				res = append(res, pc)
			}
		}
	}
	return res
}
