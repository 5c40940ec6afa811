package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const StandardTuningWarning = "Note: chord shapes are for standard tuning (EADGBE) only."

var (
	chordTuning  string
	chordMidi    string
	chordShape   int
	chordStrum   uint32
	chordDiagram bool
)

func init() {
	chordCmd.Flags().StringVarP(&chordTuning, "tuning", "t", "", "tuning preset or six notes, low string first (default from config)")
	chordCmd.Flags().StringVar(&chordMidi, "midi", "", "write the selected shape to this MIDI file")
	chordCmd.Flags().IntVar(&chordShape, "shape", 1, "which shape --midi writes, 1 = first")
	chordCmd.Flags().Uint32Var(&chordStrum, "strum", 40, "ticks between strummed strings in the MIDI file")
	chordCmd.Flags().BoolVarP(&chordDiagram, "diagram", "d", false, "draw chord boxes")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <type>",
	Short: "CAGED fingerings of a chord",
	Long: fmt.Sprintf(`Prints every playable fingering of a chord, low E string first.
Types: %v`, chordTypeList()),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		typ, err := chord.ParseType(args[1])
		if err != nil {
			return err
		}
		tun, err := tuningOrDefault(chordTuning)
		if err != nil {
			return err
		}

		chart := chord.Lookup(root, typ, tun)
		logger.Debug("Looked up chord",
			zap.String("root", root.String()),
			zap.String("type", string(typ)),
			zap.Int("fingerings", len(chart.Fingerings)))

		out := cmd.OutOrStdout()
		if !chart.StandardTuning {
			fmt.Fprintln(cmd.ErrOrStderr(), StandardTuningWarning)
		}
		if chordDiagram {
			fmt.Fprintln(out, render.Diagrams(chart.Fingerings))
		} else {
			for _, f := range chart.Fingerings {
				fmt.Fprintf(out, "%-22v%v\n", f.Name, f.FretString())
			}
		}

		if chordMidi == "" {
			return nil
		}
		if chordShape < 1 || chordShape > len(chart.Fingerings) {
			return fmt.Errorf("--shape must be between 1 and %d", len(chart.Fingerings))
		}
		f := chart.Fingerings[chordShape-1]
		if err := midi.WriteChordFile(chordMidi, tun, f, chordStrum); err != nil {
			return err
		}
		logger.Info("Wrote MIDI", zap.String("path", chordMidi), zap.String("shape", f.Name))
		return nil
	},
}

func chordTypeList() string {
	var tags []string
	for _, t := range chord.Types() {
		tags = append(tags, string(t))
	}
	return strings.Join(tags, ", ")
}
