package midi

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/melodygen/constants"
	"github.com/jsphweid/melodygen/model"
	"github.com/jsphweid/melodygen/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrUnknownNote means a melody note has no entry in the pitch table.
var ErrUnknownNote = errors.New("note has no pitch")

type Options struct {
	TrackName    string
	Tempo        float64
	Channel      uint8
	Velocity     uint8
	TicksPerBeat uint16
	// BeatsPerNote is the length of every note and the distance between
	// consecutive note starts.
	BeatsPerNote uint32
}

func DefaultOptions() Options {
	return Options{
		TrackName:    constants.TrackName,
		Tempo:        constants.Tempo,
		Channel:      constants.Channel,
		Velocity:     constants.Velocity,
		TicksPerBeat: constants.TicksPerBeat,
		BeatsPerNote: constants.BeatsPerNote,
	}
}

// Encode renders m as a single track SMF. Every note starts when the previous
// one ends, beginning at tick 0.
func Encode(m model.Melody, pitches model.PitchTable, meter model.Meter, opts Options) (*smf.SMF, error) {
	clock := smf.MetricTicks(opts.TicksPerBeat)
	length := clock.Ticks4th() * opts.BeatsPerNote

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(opts.TrackName))
	tr.Add(0, smf.MetaTempo(opts.Tempo))
	num, denom := meter.Signature()
	tr.Add(0, smf.MetaMeter(num, denom))

	for i, note := range m.Notes() {
		key, ok := pitches[note]
		if !ok {
			return nil, fmt.Errorf("%w: %q at beat %d", ErrUnknownNote, note, i)
		}
		tr.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(length, midi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return s, nil
}

func Write(w io.Writer, m model.Melody, pitches model.PitchTable, meter model.Meter, opts Options) error {
	s, err := Encode(m, pitches, meter, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

// WriteFile encodes before touching the file system, so a melody that cannot
// be encoded leaves no file behind.
func WriteFile(filename string, m model.Melody, pitches model.PitchTable, meter model.Meter, opts Options) error {
	s, err := Encode(m, pitches, meter, opts)
	if err != nil {
		return err
	}
	return util.WithFile(filename, func(f *os.File) error {
		_, err := s.WriteTo(f)
		return err
	})
}
