package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fretCmd)
}

var fretCmd = &cobra.Command{
	Use:   "fret <open-note> <fret>",
	Short: "Note at a fret",
	Long:  `Prints the note sounded at <fret> on a string tuned to <open-note>.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		open, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		fret, err := parseFret(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), note.AtFret(open, fret))
		return nil
	},
}
