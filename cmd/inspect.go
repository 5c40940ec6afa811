package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/spf13/cobra"
)

var (
	inspectRoot  string
	inspectScale string
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectRoot, "root", "r", "", "label notes as degrees above this root (default: first note)")
	inspectCmd.Flags().StringVarP(&inspectScale, "scale", "s", "", "flag notes outside this scale on the root")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long: `Lists the distinct pitch classes a MIDI file sounds, with their degrees.
With --scale, notes that fall outside the scale are marked.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		notes := midi.PitchClasses(s)
		if len(notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no notes")
			return nil
		}

		root := notes[0]
		if inspectRoot != "" {
			root, err = note.Parse(inspectRoot)
			if err != nil {
				return err
			}
		}
		if inspectScale == "" {
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-3v%v\n", n, scale.Degree(root, n))
			}
			return nil
		}

		typ, err := scale.ParseType(inspectScale)
		if err != nil {
			return err
		}
		for _, n := range notes {
			mark := ""
			if !scale.Contains(root, typ, n) {
				mark = " outside"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-3v%v%v\n", n, scale.Degree(root, n), mark)
		}
		return nil
	},
}
