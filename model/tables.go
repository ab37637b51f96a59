package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownMeter = errors.New("unknown meter")
	ErrUnknownKey   = errors.New("unknown key")

	// ErrInconsistentTables means the static tables contradict each other,
	// e.g. a chord root that is not part of its key's scale.
	ErrInconsistentTables = errors.New("inconsistent tables")
)

const (
	ScaleLength       = 7
	ProgressionLength = 4
)

// Scale is the ordered diatonic note names of a key.
type Scale = []string

// Progression is the ordered chord symbols of a key, e.g. C G Am F.
type Progression = []string

// PitchTable maps a note spelling to a MIDI note number.
type PitchTable = map[string]uint8

type Meter struct {
	ID              string
	BeatsPerMeasure int
}

// Signature splits an identifier such as "6/8" into numerator and denominator.
// Identifiers without a slash fall back to BeatsPerMeasure/4.
func (m Meter) Signature() (num, denom uint8) {
	if n, d, ok := parseSignature(m.ID); ok {
		return uint8(n), uint8(d)
	}
	return uint8(m.BeatsPerMeasure), 4
}

func parseSignature(id string) (num, denom int, ok bool) {
	parts := strings.SplitN(id, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	n, errN := strconv.Atoi(parts[0])
	d, errD := strconv.Atoi(parts[1])
	if errN != nil || errD != nil || n <= 0 || d <= 0 || n > 255 || d > 255 {
		return 0, 0, false
	}
	return n, d, true
}

// checkSignature makes sure the time signature written for m agrees with the
// measures generated for it. MIDI stores the denominator as a power of two.
func (m Meter) checkSignature() error {
	if !strings.Contains(m.ID, "/") {
		if m.BeatsPerMeasure > 255 {
			return fmt.Errorf("meter %q has too many beats", m.ID)
		}
		return nil
	}
	n, d, ok := parseSignature(m.ID)
	if !ok {
		return fmt.Errorf("meter %q is not a time signature", m.ID)
	}
	if n != m.BeatsPerMeasure {
		return fmt.Errorf("meter %q has %d beats per measure", m.ID, m.BeatsPerMeasure)
	}
	if d&(d-1) != 0 {
		return fmt.Errorf("meter %q denominator is not a power of two", m.ID)
	}
	return nil
}

type Key struct {
	ID          string
	Scale       Scale
	Progression Progression
}

type Tables struct {
	Keys    map[string]Key
	Meters  map[string]Meter
	Pitches PitchTable
}

func (t *Tables) Meter(id string) (Meter, error) {
	m, ok := t.Meters[id]
	if !ok {
		return Meter{}, fmt.Errorf("%w: %q", ErrUnknownMeter, id)
	}
	return m, nil
}

func (t *Tables) Key(id string) (Key, error) {
	k, ok := t.Keys[id]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, id)
	}
	return k, nil
}

// CheckInput validates user supplied identifiers, meter first.
func (t *Tables) CheckInput(meterID, keyID string) error {
	if _, err := t.Meter(meterID); err != nil {
		return err
	}
	if _, err := t.Key(keyID); err != nil {
		return err
	}
	return nil
}

// Validate checks that every key has a full scale and progression, that every
// chord root is in its key's scale and that every scale note can be pitched.
func (t *Tables) Validate() error {
	if len(t.Keys) == 0 {
		return fmt.Errorf("%w: no keys", ErrInconsistentTables)
	}
	if len(t.Meters) == 0 {
		return fmt.Errorf("%w: no meters", ErrInconsistentTables)
	}
	for id, m := range t.Meters {
		if m.ID != id {
			return fmt.Errorf("%w: meter %q has id %q", ErrInconsistentTables, id, m.ID)
		}
		if m.BeatsPerMeasure <= 0 {
			return fmt.Errorf("%w: meter %q has %d beats", ErrInconsistentTables, id, m.BeatsPerMeasure)
		}
		if err := m.checkSignature(); err != nil {
			return fmt.Errorf("%w: %v", ErrInconsistentTables, err)
		}
	}
	for id, k := range t.Keys {
		if k.ID != id {
			return fmt.Errorf("%w: key %q has id %q", ErrInconsistentTables, id, k.ID)
		}
		if len(k.Scale) != ScaleLength {
			return fmt.Errorf("%w: key %q has %d scale notes", ErrInconsistentTables, id, len(k.Scale))
		}
		if len(k.Progression) != ProgressionLength {
			return fmt.Errorf("%w: key %q has %d chords", ErrInconsistentTables, id, len(k.Progression))
		}
		for _, note := range k.Scale {
			if _, ok := t.Pitches[note]; !ok {
				return fmt.Errorf("%w: note %q of key %q has no pitch", ErrInconsistentTables, note, id)
			}
		}
		for _, symbol := range k.Progression {
			root := ChordRoot(symbol)
			if quality := strings.TrimPrefix(symbol, root); quality != "" && quality != "m" {
				return fmt.Errorf("%w: chord %q of key %q is not a triad symbol", ErrInconsistentTables, symbol, id)
			}
			if indexOf(k.Scale, root) < 0 {
				return fmt.Errorf("%w: chord %q is not built on a note of key %q", ErrInconsistentTables, symbol, id)
			}
		}
	}
	return nil
}

// ChordRoot returns the note name a chord symbol is built on: the letter plus
// an optional accidental. "F#m" -> "F#", "Am" -> "A", "Bb" -> "Bb".
func ChordRoot(symbol string) string {
	if symbol == "" {
		return ""
	}
	if len(symbol) > 1 && (symbol[1] == '#' || symbol[1] == 'b') {
		return symbol[:2]
	}
	return symbol[:1]
}

func indexOf(scale Scale, note string) int {
	for i, n := range scale {
		if n == note {
			return i
		}
	}
	return -1
}
