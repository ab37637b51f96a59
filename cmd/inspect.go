package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/melodygen/midi"
	"github.com/jsphweid/melodygen/model"
	"github.com/spf13/cobra"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.mid>",
		Short: "Inspects a midi file",
		Long:  `Prints the track name, tempo, meter and notes of a MIDI file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd.OutOrStdout(), args[0], root.tables.Pitches)
		},
	}
}

func inspect(out io.Writer, path string, pitches model.PitchTable) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	summary, err := midi.Decode(s, pitches)
	if err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}

	fmt.Fprintf(out, "track: %v\n", summary.TrackName)
	fmt.Fprintf(out, "tempo: %v\n", summary.Tempo)
	if summary.Meter != "" {
		fmt.Fprintf(out, "meter: %v\n", summary.Meter)
	}
	fmt.Fprintf(out, "notes: %v\n", len(summary.Notes))
	for _, n := range summary.Notes {
		name := n.Name
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(out, "  %6.2f  %-2v (%v) len %v vel %v\n", n.Start, name, n.Key, n.Duration, n.Velocity)
	}
	return nil
}
