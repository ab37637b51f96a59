package model

// Measure is one bar of a melody: the chord it was sampled from and one note
// name per beat.
type Measure struct {
	Chord string   `json:"chord" yaml:"chord"`
	Notes []string `json:"notes" yaml:"notes"`
}

type Melody struct {
	Meter    string    `json:"meter" yaml:"meter"`
	Key      string    `json:"key" yaml:"key"`
	Measures []Measure `json:"measures" yaml:"measures"`
}

// Notes flattens the measures into one note name per beat.
func (m Melody) Notes() []string {
	var res []string
	for _, measure := range m.Measures {
		res = append(res, measure.Notes...)
	}
	return res
}
