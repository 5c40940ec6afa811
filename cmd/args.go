package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretdex/tuning"
)

func parseFret(s string) (int, error) {
	fret, err := strconv.Atoi(s)
	if err != nil || fret < 0 {
		return 0, fmt.Errorf("fret must be a non-negative integer, got %q", s)
	}
	return fret, nil
}

// tuningOrDefault parses the --tuning flag, falling back to the config.
func tuningOrDefault(flag string) (tuning.Tuning, error) {
	if flag == "" {
		return cfg.Tuning(), nil
	}
	return tuning.Parse(flag)
}
