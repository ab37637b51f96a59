package cmd

import (
	"github.com/jsphweid/melodygen/constants"
	"github.com/spf13/cobra"
)

func newTablesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Prints the active tables as YAML",
		Long:  `Prints the keys, meters and pitches in use. The output can be edited and passed back with --tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := constants.MarshalTables(root.tables)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
