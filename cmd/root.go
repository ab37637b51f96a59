package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/melodygen/constants"
	"github.com/jsphweid/melodygen/model"
	"github.com/spf13/cobra"
)

// errInvalidInput has already been reported to the user.
var errInvalidInput = errors.New("invalid input")

type rootOptions struct {
	tablesPath string
	debug      bool

	// loaded once before any subcommand runs, read only afterwards
	tables *model.Tables
}

// newRootCmd builds the whole command tree. Every call gets fresh flag
// values so repeated runs never see each other's flags.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "melodygen",
		Short:         "Random melodies over a chord progression",
		Long:          `Generates short random melodies from the chord tones of a key's progression and saves them as MIDI files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogger(opts.debug)
			path := opts.tablesPath
			if path == "" {
				path = constants.GetTablesPath()
			}
			t, err := constants.LoadTables(path)
			if err != nil {
				return err
			}
			opts.tables = t
			slog.Debug("loaded tables", "path", path, "keys", len(t.Keys), "meters", len(t.Meters))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.tablesPath, "tables", "", "YAML file with keys, meters and pitches (env MELODY_TABLES)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newInspectCmd(opts),
		newTablesCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// loadDotEnv loads environment files; only a missing file is ignored.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	return nil
}

func Execute() {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	err := Run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errInvalidInput) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Run executes args against a new command tree without exiting the process.
func Run(args []string, in io.Reader, out io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}
