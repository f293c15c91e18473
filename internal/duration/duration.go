// Package duration parses and formats the colon-separated duration grammar
// used on the staged command line: a bare integer is seconds, and up to
// three colon-separated fields are read right-to-left as seconds, minutes,
// and hours.
package duration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stagedtimer/staged/internal/errors"
)

// Base-60 multipliers applied right-to-left: seconds, minutes, hours.
var multipliers = [3]int{1, 60, 3600}

// Parse converts a duration token into a number of seconds.
// Accepted forms: "90" (seconds), "1:30" (M:S), "1:01:01" (H:M:S).
func Parse(token string) (int, error) {
	fields := strings.Split(token, ":")
	if len(fields) > len(multipliers) {
		return 0, errors.New(errors.ErrArgs,
			fmt.Sprintf("'%s' doesn't look like a valid duration", token),
			"Use seconds (90), M:S (1:30), or H:M:S (1:01:01)")
	}

	total := 0
	for i := 0; i < len(fields); i++ {
		// Walk fields right-to-left so the last field is always seconds.
		field := fields[len(fields)-1-i]
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return 0, errors.WrapWithCode(err, errors.ErrArgs,
				fmt.Sprintf("'%s' doesn't look like a valid duration", token),
				"Use seconds (90), M:S (1:30), or H:M:S (1:01:01)")
		}
		total += value * multipliers[i]
	}

	return total, nil
}

// Format renders a number of seconds as zero-padded H:MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
