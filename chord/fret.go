package chord

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Fret is a position on one string. Muted marks a string that is not played.
type Fret int

const Muted Fret = -1

// x is shorthand for Muted in the shape tables
const x = Muted

func (f Fret) Played() bool {
	return f != Muted
}

func (f Fret) String() string {
	if !f.Played() {
		return "x"
	}
	return strconv.Itoa(int(f))
}

// MarshalJSON writes "x" for muted strings and a number otherwise.
func (f Fret) MarshalJSON() ([]byte, error) {
	if !f.Played() {
		return []byte(`"x"`), nil
	}
	return json.Marshal(int(f))
}

func (f *Fret) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "x" {
			return fmt.Errorf("fret must be a number or \"x\", got %q", s)
		}
		*f = Muted
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fret must be a number or \"x\": %w", err)
	}
	if n < 0 {
		return fmt.Errorf("fret must not be negative, got %d", n)
	}
	*f = Fret(n)
	return nil
}
