package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Slot times are stored as seconds since midnight and rendered as
// zero-padded clock strings.

var ErrInvalidClock = errors.New("hora inválida, se espera HH:MM:SS")

// ParseClock converts "HH:MM:SS" (or "HH:MM") to seconds since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClock
	}

	var values [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, ErrInvalidClock
		}
		values[i] = v
	}

	hours, minutes, seconds := values[0], values[1], values[2]
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, ErrInvalidClock
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// FormatClock renders seconds since midnight as "HH:MM:SS".
func FormatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatClockShort renders seconds since midnight as "HH:MM".
func FormatClockShort(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/3600, seconds%3600/60)
}
