package cmd

import (
	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	logger = zap.NewNop()
	cfg    = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Guitar scales, degrees and chord shapes",
	Long: `fretdex computes which notes to highlight on a guitar fretboard for a
scale and which CAGED chord fingerings to show for a chord.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("Loaded config", zap.String("path", configPath), zap.String("tuning", cfg.Tuning().String()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to the YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
