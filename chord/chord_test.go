package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/melodygen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cMajor = model.Scale{"C", "D", "E", "F", "G", "A", "B"}

func TestParse(t *testing.T) {
	cases := []struct {
		symbol  string
		root    string
		quality Quality
	}{
		{"C", "C", Major},
		{"Am", "A", Minor},
		{"F#m", "F#", Minor},
		{"Bb", "Bb", Major},
		{"C#", "C#", Major},
	}

	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			c, err := Parse(tc.symbol)
			require.NoError(t, err)
			assert.Equal(t, tc.root, c.Root)
			assert.Equal(t, tc.quality, c.Quality)
			assert.Equal(t, tc.symbol, c.Symbol)
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptySymbol)

	for _, symbol := range []string{"H", "Cmaj7", "am", "C7"} {
		t.Run(symbol, func(t *testing.T) {
			_, err := Parse(symbol)
			assert.ErrorIs(t, err, ErrMalformedSymbol)
		})
	}
}

func TestTonesOfAMinorInC(t *testing.T) {
	tones, err := Tones(cMajor, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E"}, tones)
}

func TestTonesOfEveryDegree(t *testing.T) {
	want := map[string][]string{
		"C": {"C", "E", "G"},
		"D": {"D", "F", "A"},
		"E": {"E", "G", "B"},
		"F": {"F", "A", "C"},
		"G": {"G", "B", "D"},
		"A": {"A", "C", "E"},
		"B": {"B", "D", "F"},
	}
	for root, tones := range want {
		t.Run(fmt.Sprintf("triad on %v", root), func(t *testing.T) {
			got, err := Tones(cMajor, root)
			require.NoError(t, err)
			assert.Equal(t, tones, got)
		})
	}
}

func TestTonesIgnoresQuality(t *testing.T) {
	aMajor := model.Scale{"A", "B", "C#", "D", "E", "F#", "G#"}
	minor, err := Parse("F#m")
	require.NoError(t, err)

	tones, err := Tones(aMajor, minor.Root)
	require.NoError(t, err)
	assert.Equal(t, []string{"F#", "A", "C#"}, tones)
}

func TestTonesRootNotInScale(t *testing.T) {
	_, err := Tones(cMajor, "F#")
	assert.ErrorIs(t, err, ErrRootNotInScale)
}

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "A-C-E", CreateChordKey([]string{"A", "C", "E"}))
}

func TestQualityString(t *testing.T) {
	assert.Equal(t, "minor", Minor.String())
	assert.Equal(t, "major", Major.String())
}
