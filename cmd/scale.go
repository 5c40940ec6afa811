package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <type>",
	Short: "Notes of a scale",
	Long: `Prints the notes of a scale with their degrees, root first.
Types: Major, Minor, Pentatonic Major, Pentatonic Minor, Dorian, Phrygian,
Lydian, Mixolydian, Locrian.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		// allow "pentatonic minor" unquoted
		typ, err := scale.ParseType(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		notes := scale.Notes(root, typ)
		out := cmd.OutOrStdout()
		for _, n := range notes {
			fmt.Fprintf(out, "%-3v", n)
		}
		fmt.Fprintln(out)
		for _, d := range scale.Degrees(notes) {
			fmt.Fprintf(out, "%-3v", d)
		}
		fmt.Fprintln(out)
		return nil
	},
}
