package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jsphweid/melodygen/constants"
	"github.com/jsphweid/melodygen/melody"
	"github.com/jsphweid/melodygen/midi"
	"github.com/jsphweid/melodygen/model"
	"github.com/jsphweid/melodygen/util"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	meter  string
	key    string
	output string
	seed   uint64
	seeded bool
	unique bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a melody",
		Long:  `Generates a four measure melody for a meter and key and saves it as a MIDI file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return generate(cmd.InOrStdin(), cmd.OutOrStdout(), root.tables, opts)
		},
	}
	cmd.Flags().StringVar(&opts.meter, "meter", "", "meter, e.g. 4/4 (prompted when empty)")
	cmd.Flags().StringVar(&opts.key, "key", "", "key, e.g. C (prompted when empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (env MELODY_OUTPUT, default "+constants.DefaultOutputPath+")")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible melody")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "name the file melody-<uuid>.mid next to --output")
	return cmd
}

var (
	chordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Width(5)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func generate(in io.Reader, out io.Writer, t *model.Tables, opts generateOptions) error {
	reader := bufio.NewReader(in)
	meterID := opts.meter
	if meterID == "" {
		meterID = prompt(reader, out, fmt.Sprintf("Choose a meter (%s): ", strings.Join(util.GetKeys(t.Meters), ", ")))
	}
	keyID := opts.key
	if keyID == "" {
		keyID = prompt(reader, out, fmt.Sprintf("Choose a key (%s): ", strings.Join(util.GetKeys(t.Keys), ", ")))
	}

	if err := t.CheckInput(meterID, keyID); err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownMeter):
			fmt.Fprintln(out, "Invalid meter selected.")
		case errors.Is(err, model.ErrUnknownKey):
			fmt.Fprintln(out, "Invalid key selected.")
		}
		slog.Debug("rejected input", "err", err)
		return errInvalidInput
	}

	src := melody.RandomSource()
	if opts.seeded {
		src = melody.NewSource(opts.seed)
	}
	m, err := melody.New(t, src).Generate(meterID, keyID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Generated Melody:", m.Notes())
	fmt.Fprintln(out, renderMeasures(m))

	path := outputPath(opts)
	meter, _ := t.Meter(meterID)
	if err := midi.WriteFile(path, m, t.Pitches, meter, midi.DefaultOptions()); err != nil {
		return err
	}
	slog.Info("wrote melody", "path", path, "meter", meterID, "key", keyID, "notes", len(m.Notes()))
	fmt.Fprintf(out, "Melody saved to %v\n", path)
	return nil
}

func prompt(r *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func outputPath(opts generateOptions) string {
	path := opts.output
	if path == "" {
		path = constants.GetOutputPath()
	}
	if opts.unique {
		path = filepath.Join(filepath.Dir(path), fmt.Sprintf("melody-%v.mid", uuid.New()))
	}
	return path
}

func renderMeasures(m model.Melody) string {
	var lines []string
	for i, measure := range m.Measures {
		lines = append(lines, fmt.Sprintf("%v %v %v",
			dimStyle.Render(fmt.Sprintf("%d", i+1)),
			chordStyle.Render(measure.Chord),
			strings.Join(measure.Notes, " ")))
	}
	return strings.Join(lines, "\n")
}
