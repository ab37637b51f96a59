package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/melodygen/model"
)

var (
	ErrEmptySymbol     = errors.New("empty chord symbol")
	ErrRootNotInScale  = errors.New("chord root not in scale")
	ErrMalformedSymbol = errors.New("malformed chord symbol")
)

type Quality int

const (
	Major Quality = iota
	Minor
)

func (q Quality) String() string {
	if q == Minor {
		return "minor"
	}
	return "major"
}

// Chord is a parsed chord symbol such as "F#m".
type Chord struct {
	Symbol  string
	Root    string
	Quality Quality
}

// Parse reads a root note (letter plus optional # or b) and an optional "m".
func Parse(symbol string) (Chord, error) {
	if symbol == "" {
		return Chord{}, ErrEmptySymbol
	}
	if symbol[0] < 'A' || symbol[0] > 'G' {
		return Chord{}, fmt.Errorf("%w: %q", ErrMalformedSymbol, symbol)
	}

	c := Chord{Symbol: symbol, Root: model.ChordRoot(symbol)}
	switch strings.TrimPrefix(symbol, c.Root) {
	case "":
		c.Quality = Major
	case "m":
		c.Quality = Minor
	default:
		return Chord{}, fmt.Errorf("%w: %q", ErrMalformedSymbol, symbol)
	}
	return c, nil
}

// Tones returns the root, third and fifth of the triad built on root using
// only notes of scale. Quality is ignored: the scale already supplies the
// right third for diatonic chords.
func Tones(scale model.Scale, root string) ([]string, error) {
	idx := -1
	for i, note := range scale {
		if note == root {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q not in %v", ErrRootNotInScale, root, scale)
	}
	n := len(scale)
	return []string{scale[idx], scale[(idx+2)%n], scale[(idx+4)%n]}, nil
}

// CreateChordKey joins the note names of a chord, e.g. "A-C-E", for display.
func CreateChordKey(notes []string) string {
	return strings.Join(notes, "-")
}
