package model

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
)

type ErrorResponse struct {
	Error string `json:"detail"`
}

type NotesResponse struct {
	Notes []note.PitchClass `json:"notes"`
}

type ScaleInfo struct {
	Name      scale.Type `json:"name"`
	Intervals []int      `json:"intervals"`
}

type ScalesResponse struct {
	Scales []ScaleInfo `json:"scales"`
}

type ChordTypesResponse struct {
	Types []chord.Type `json:"types"`
}

type TuningsResponse struct {
	Tunings []tuning.Preset `json:"tunings"`
}

type FretResponse struct {
	Note note.PitchClass `json:"note"`
}

type ScaleResponse struct {
	Root    note.PitchClass   `json:"root"`
	Type    scale.Type        `json:"type"`
	Notes   []note.PitchClass `json:"notes"`
	Degrees []string          `json:"degrees"`
}

type DegreeResponse struct {
	Degree string `json:"degree"`
}

// ChordSearchRequest takes names as strings so bad input can be reported
// per field. Tuning is optional and advisory.
type ChordSearchRequest struct {
	Root   string   `json:"root"`
	Type   string   `json:"type"`
	Tuning []string `json:"tuning,omitempty"`
}

type FingeringResult struct {
	Name     string             `json:"name"`
	Frets    [6]chord.Fret      `json:"frets"`
	BaseFret int                `json:"base_fret"`
	Notes    []chord.StringNote `json:"notes"`
}

type ChordSearchResponse struct {
	Root           note.PitchClass   `json:"root"`
	Type           chord.Type        `json:"type"`
	Tuning         tuning.Tuning     `json:"tuning"`
	StandardTuning bool              `json:"standard_tuning"`
	Warning        string            `json:"warning,omitempty"`
	Fingerings     []FingeringResult `json:"fingerings"`
}

// PositionsResponse lists the frets where Note sounds, low string first.
type PositionsResponse struct {
	Note      note.PitchClass `json:"note"`
	Tuning    tuning.Tuning   `json:"tuning"`
	Positions [][]int         `json:"positions"`
}

type FretboardRequest struct {
	Root   string   `json:"root"`
	Scale  string   `json:"scale"`
	Tuning []string `json:"tuning,omitempty"`
	Frets  int      `json:"frets,omitempty"`
	Mode   string   `json:"mode,omitempty"`
}

type FretboardResponse struct {
	Scale  scale.Type      `json:"scale"`
	Tuning tuning.Tuning   `json:"tuning"`
	Board  fretboard.Board `json:"board"`
}
