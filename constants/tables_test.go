package constants

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/melodygen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestDefaultTablesCoverInputs(t *testing.T) {
	tables := DefaultTables()

	assert := assert.New(t)
	for id, beats := range map[string]int{"4/4": 4, "3/4": 3, "2/4": 2, "6/8": 6} {
		m, err := tables.Meter(id)
		assert.NoError(err)
		assert.Equal(beats, m.BeatsPerMeasure)
	}
	for _, id := range []string{"C", "G", "D", "A"} {
		k, err := tables.Key(id)
		assert.NoError(err)
		assert.Len(k.Scale, model.ScaleLength)
		assert.Len(k.Progression, model.ProgressionLength)
		assert.Equal(id, k.Scale[0])
	}
	assert.Len(tables.Meters, 4)
	assert.Len(tables.Keys, 4)
}

func TestDefaultTablesAreNotShared(t *testing.T) {
	a := DefaultTables()
	b := DefaultTables()
	a.Keys["C"].Scale[0] = "X"
	a.Pitches["C"] = 0

	assert.Equal(t, "C", b.Keys["C"].Scale[0])
	assert.Equal(t, uint8(60), b.Pitches["C"])
}

func TestEnharmonicPitches(t *testing.T) {
	p := DefaultPitches()
	assert := assert.New(t)
	assert.Equal(p["C#"], p["Db"])
	assert.Equal(p["D#"], p["Eb"])
	assert.Equal(p["F#"], p["Gb"])
	assert.Equal(p["G#"], p["Ab"])
	assert.Equal(p["A#"], p["Bb"])
}

func TestTablesYAMLRoundTrip(t *testing.T) {
	data, err := MarshalTables(DefaultTables())
	require.NoError(t, err)

	got, err := ReadTables(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), got)
}

func TestReadTablesDefaultsPitches(t *testing.T) {
	src := `
meters:
  - id: 5/4
    beats: 5
keys:
  - id: F
    scale: [F, G, A, Bb, C, D, E]
    progression: [F, C, Dm, Bb]
`
	tables, err := ReadTables(strings.NewReader(src))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(5, tables.Meters["5/4"].BeatsPerMeasure)
	assert.Equal([]string{"F", "C", "Dm", "Bb"}, tables.Keys["F"].Progression)
	assert.Equal(uint8(70), tables.Pitches["Bb"])
}

func TestReadTablesRejectsInconsistentKey(t *testing.T) {
	src := `
meters:
  - id: 4/4
    beats: 4
keys:
  - id: A
    scale: [A, B, C#, D, E, F#, G#]
    progression: [A, E, Fm, D]
`
	_, err := ReadTables(strings.NewReader(src))
	assert.ErrorIs(t, err, model.ErrInconsistentTables)
}

func TestReadTablesRejectsDuplicates(t *testing.T) {
	src := `
meters:
  - id: 4/4
    beats: 4
  - id: 4/4
    beats: 3
keys:
  - id: C
    scale: [C, D, E, F, G, A, B]
    progression: [C, G, Am, F]
`
	_, err := ReadTables(strings.NewReader(src))
	assert.ErrorIs(t, err, model.ErrInconsistentTables)
}

func TestReadTablesRejectsUnknownFields(t *testing.T) {
	_, err := ReadTables(strings.NewReader("tempo: 90\n"))
	assert.Error(t, err)
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)

	data, err := MarshalTables(DefaultTables())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	tables, err = LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)

	_, err = LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("MELODY_OUTPUT", "")
	t.Setenv("PORT", "")
	assert.Equal(t, DefaultOutputPath, GetOutputPath())
	assert.Equal(t, DefaultPort, GetPort())

	t.Setenv("MELODY_OUTPUT", "out.mid")
	t.Setenv("PORT", "9000")
	assert.Equal(t, "out.mid", GetOutputPath())
	assert.Equal(t, "9000", GetPort())
}
