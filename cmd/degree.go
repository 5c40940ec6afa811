package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(degreeCmd)
}

var degreeCmd = &cobra.Command{
	Use:   "degree <root> <note>",
	Short: "Scale degree of a note",
	Long:  `Prints the degree of <note> above <root> in flat notation, e.g. "♭3".`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		n, err := note.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), scale.Degree(root, n))
		return nil
	},
}
