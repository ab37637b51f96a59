package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/melodygen/model"
	"github.com/jsphweid/melodygen/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Note is a decoded note with its start and length in beats.
type Note struct {
	Name     string  `json:"name"`
	Key      uint8   `json:"key"`
	Velocity uint8   `json:"velocity"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type Summary struct {
	TrackName string  `json:"track_name"`
	Tempo     float64 `json:"tempo"`
	Meter     string  `json:"meter,omitempty"`
	Notes     []Note  `json:"notes"`
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// the smf reader may panic on corrupt input
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// Decode pairs note on/off events of every track. Names come from the pitch
// table; keys spelled more than one way use the sharp spelling.
func Decode(s *smf.SMF, pitches model.PitchTable) (Summary, error) {
	var res Summary
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return res, errors.New("only metric time formats are supported")
	}
	perBeat := float64(ticks.Ticks4th())
	names := noteNames(pitches)

	for _, track := range s.Tracks {
		var absTicks int64
		started := make(map[uint8]int64)
		velocities := make(map[uint8]uint8)
		for _, evt := range track {
			absTicks += int64(evt.Delta)

			var channel, key, velocity, num, denom uint8
			var text string
			var bpm float64
			switch {
			case evt.Message.GetMetaTrackName(&text):
				res.TrackName = text
			case evt.Message.GetMetaTempo(&bpm):
				res.Tempo = bpm
			case evt.Message.GetMetaMeter(&num, &denom):
				res.Meter = fmt.Sprintf("%d/%d", num, denom)
			case evt.Message.GetNoteOff(&channel, &key, &velocity),
				evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity == 0:
				start, ok := started[key]
				if !ok {
					continue
				}
				delete(started, key)
				res.Notes = append(res.Notes, Note{
					Name:     names[key],
					Key:      key,
					Velocity: velocities[key],
					Start:    float64(start) / perBeat,
					Duration: float64(absTicks-start) / perBeat,
				})
			case evt.Message.GetNoteOn(&channel, &key, &velocity):
				started[key] = absTicks
				velocities[key] = velocity
			}
		}
	}
	return res, nil
}

func noteNames(pitches model.PitchTable) map[uint8]string {
	res := make(map[uint8]string)
	for _, name := range util.GetKeys(pitches) {
		key := pitches[name]
		prev, ok := res[key]
		// prefer "C#" over "Db"
		if !ok || (len(prev) > 1 && prev[1] == 'b') {
			res[key] = name
		}
	}
	return res
}
