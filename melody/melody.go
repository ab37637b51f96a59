// Package melody samples short melodies from a key's chord progression.
package melody

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jsphweid/melodygen/chord"
	"github.com/jsphweid/melodygen/model"
)

// MeasureCount is the number of measures in every generated melody.
const MeasureCount = 4

// Source is the randomness used for sampling. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// RandomSource returns a source seeded from the runtime.
func RandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generator is not safe for concurrent use when its Source is not.
type Generator struct {
	tables *model.Tables
	src    Source
}

func New(tables *model.Tables, src Source) *Generator {
	return &Generator{tables: tables, src: src}
}

// Generate samples MeasureCount measures for the given meter and key. Each
// measure picks a chord of the key's progression and then one of that
// chord's three tones per beat.
//
// Unknown identifiers return an error. A chord whose root is not in the
// key's scale panics: the tables are broken.
func (g *Generator) Generate(meterID, keyID string) (model.Melody, error) {
	meter, err := g.tables.Meter(meterID)
	if err != nil {
		return model.Melody{}, err
	}
	key, err := g.tables.Key(keyID)
	if err != nil {
		return model.Melody{}, err
	}

	res := model.Melody{
		Meter:    meter.ID,
		Key:      key.ID,
		Measures: make([]model.Measure, 0, MeasureCount),
	}
	for i := 0; i < MeasureCount; i++ {
		symbol := key.Progression[g.src.IntN(len(key.Progression))]
		tones := mustTones(key, symbol)

		notes := make([]string, meter.BeatsPerMeasure)
		for beat := range notes {
			notes[beat] = tones[g.src.IntN(len(tones))]
		}
		slog.Debug("sampled measure", "measure", i+1, "chord", symbol, "tones", tones, "notes", notes)
		res.Measures = append(res.Measures, model.Measure{Chord: symbol, Notes: notes})
	}
	return res, nil
}

func mustTones(key model.Key, symbol string) []string {
	c, err := chord.Parse(symbol)
	if err != nil {
		panic(fmt.Sprintf("key %v: %v", key.ID, err))
	}
	tones, err := chord.Tones(key.Scale, c.Root)
	if err != nil {
		panic(fmt.Sprintf("key %v: chord %v: %v", key.ID, symbol, err))
	}
	return tones
}
