package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists tuning presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range tuning.Presets() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16v%v\n", p.Name, p.Notes)
		}
	},
}
