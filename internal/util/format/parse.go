package format

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/docker/go-units"
)

// ErrSizeOverflow is returned when a human size does not fit in an int64.
var ErrSizeOverflow = errors.New("size out of range")

// ParseHuman parses operator input such as "1536", "1.5k" or "2GB" into a
// byte count using 1024-based units. Empty input and "unlimited" are 0.
func ParseHuman(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "unlimited") {
		return 0, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	// The grammar has no sign, so a negative or saturated result means the
	// float-to-int conversion overflowed.
	if n < 0 || n == math.MaxInt64 {
		return 0, fmt.Errorf("parse size %q: %w", s, ErrSizeOverflow)
	}
	return n, nil
}
