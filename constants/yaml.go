package constants

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/melodygen/model"
	"github.com/jsphweid/melodygen/util"
	"gopkg.in/yaml.v3"
)

type tablesFile struct {
	Meters  []meterEntry     `yaml:"meters"`
	Keys    []keyEntry       `yaml:"keys"`
	Pitches model.PitchTable `yaml:"pitches"`
}

type meterEntry struct {
	ID    string `yaml:"id"`
	Beats int    `yaml:"beats"`
}

type keyEntry struct {
	ID          string   `yaml:"id"`
	Scale       []string `yaml:"scale,flow"`
	Progression []string `yaml:"progression,flow"`
}

// LoadTables reads a YAML table set from path. An empty path gives the
// defaults. The result is validated.
func LoadTables(path string) (*model.Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open tables file: %w", err)
	}
	defer f.Close()

	t, err := ReadTables(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func ReadTables(r io.Reader) (*model.Tables, error) {
	var tf tablesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("could not decode tables: %w", err)
	}

	t := &model.Tables{
		Keys:    make(map[string]model.Key, len(tf.Keys)),
		Meters:  make(map[string]model.Meter, len(tf.Meters)),
		Pitches: tf.Pitches,
	}
	// pitches may be omitted to reuse octave 4
	if len(t.Pitches) == 0 {
		t.Pitches = DefaultPitches()
	}
	for _, m := range tf.Meters {
		if _, dup := t.Meters[m.ID]; dup {
			return nil, fmt.Errorf("%w: meter %q defined twice", model.ErrInconsistentTables, m.ID)
		}
		t.Meters[m.ID] = model.Meter{ID: m.ID, BeatsPerMeasure: m.Beats}
	}
	for _, k := range tf.Keys {
		if _, dup := t.Keys[k.ID]; dup {
			return nil, fmt.Errorf("%w: key %q defined twice", model.ErrInconsistentTables, k.ID)
		}
		t.Keys[k.ID] = model.Key{ID: k.ID, Scale: k.Scale, Progression: k.Progression}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MarshalTables renders t in the format ReadTables accepts, sorted by id.
func MarshalTables(t *model.Tables) ([]byte, error) {
	var tf tablesFile
	for _, id := range util.GetKeys(t.Meters) {
		tf.Meters = append(tf.Meters, meterEntry{ID: id, Beats: t.Meters[id].BeatsPerMeasure})
	}
	for _, id := range util.GetKeys(t.Keys) {
		k := t.Keys[id]
		tf.Keys = append(tf.Keys, keyEntry{ID: id, Scale: k.Scale, Progression: k.Progression})
	}
	tf.Pitches = t.Pitches

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
