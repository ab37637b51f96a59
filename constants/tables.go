package constants

import (
	"github.com/jsphweid/melodygen/model"
)

// DefaultTables returns a fresh copy of the built in keys, meters and pitches.
// Chord progressions are I, V, vi, IV.
func DefaultTables() *model.Tables {
	return &model.Tables{
		Keys: map[string]model.Key{
			"C": {
				ID:          "C",
				Scale:       model.Scale{"C", "D", "E", "F", "G", "A", "B"},
				Progression: model.Progression{"C", "G", "Am", "F"},
			},
			"G": {
				ID:          "G",
				Scale:       model.Scale{"G", "A", "B", "C", "D", "E", "F#"},
				Progression: model.Progression{"G", "D", "Em", "C"},
			},
			"D": {
				ID:          "D",
				Scale:       model.Scale{"D", "E", "F#", "G", "A", "B", "C#"},
				Progression: model.Progression{"D", "A", "Bm", "G"},
			},
			"A": {
				ID:          "A",
				Scale:       model.Scale{"A", "B", "C#", "D", "E", "F#", "G#"},
				Progression: model.Progression{"A", "E", "F#m", "D"},
			},
		},
		Meters: map[string]model.Meter{
			"4/4": {ID: "4/4", BeatsPerMeasure: 4},
			"3/4": {ID: "3/4", BeatsPerMeasure: 3},
			"2/4": {ID: "2/4", BeatsPerMeasure: 2},
			"6/8": {ID: "6/8", BeatsPerMeasure: 6},
		},
		Pitches: DefaultPitches(),
	}
}

// DefaultPitches spells octave 4 with sharps and flats.
func DefaultPitches() model.PitchTable {
	return model.PitchTable{
		"C": 60, "C#": 61, "D": 62, "D#": 63, "E": 64, "F": 65, "F#": 66,
		"G": 67, "G#": 68, "A": 69, "A#": 70, "B": 71,
		"Db": 61, "Eb": 63, "Gb": 66, "Ab": 68, "Bb": 70,
	}
}
