package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/render"
	"github.com/jsphweid/fretdex/scale"
	"github.com/spf13/cobra"
)

var (
	boardTuning  string
	boardFrets   int
	boardDegrees bool
)

func init() {
	fretboardCmd.Flags().StringVarP(&boardTuning, "tuning", "t", "", "tuning preset or six notes, low string first (default from config)")
	fretboardCmd.Flags().IntVarP(&boardFrets, "frets", "f", 0, "frets to draw (default from config)")
	fretboardCmd.Flags().BoolVar(&boardDegrees, "degrees", false, "label notes with scale degrees")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard <root> <scale>",
	Short: "Draws a scale on the fretboard",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		typ, err := scale.ParseType(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		tun, err := tuningOrDefault(boardTuning)
		if err != nil {
			return err
		}
		frets := boardFrets
		if frets == 0 {
			frets = cfg.FretCount
		}
		if frets < 1 || frets > fretboard.MaxFrets {
			return fmt.Errorf("--frets must be between 1 and %d", fretboard.MaxFrets)
		}
		mode := fretboard.ModeNotes
		if boardDegrees {
			mode = fretboard.ModeDegrees
		}

		b := fretboard.Scale(tun, root, typ, frets, mode)
		fmt.Fprintf(cmd.OutOrStdout(), "%v %v (%v)\n", root, typ, tun.Name())
		fmt.Fprint(cmd.OutOrStdout(), render.Fretboard(b))
		return nil
	},
}
