package constants

import "os"

const DefaultOutputPath = "melody.mid"

const DefaultPort = "8080"

func GetOutputPath() string {
	path := os.Getenv("MELODY_OUTPUT")
	if path != "" {
		return path
	}
	return DefaultOutputPath
}

// GetTablesPath returns the YAML table set to load instead of the built in
// tables, or "" for the defaults.
func GetTablesPath() string {
	return os.Getenv("MELODY_TABLES")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return DefaultPort
}

// MIDI rendering
const (
	Tempo        = 120
	Channel      = 0
	Velocity     = 100
	TrackName    = "Track"
	TicksPerBeat = 480
	BeatsPerNote = 1
)
