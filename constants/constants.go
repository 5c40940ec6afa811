package constants

import "os"

const DefaultListenAddr = ":8080"

// frets drawn on a fretboard when nothing else is configured
const DefaultFretCount = 15

func GetConfigPath() string {
	path := os.Getenv("FRETDEX_CONFIG")
	if path != "" {
		return path
	}
	return "./fretdex.yaml"
}

func GetListenAddr() string {
	return os.Getenv("FRETDEX_ADDR")
}
