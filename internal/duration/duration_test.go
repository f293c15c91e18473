package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedtimer/staged/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token  string
		expect int
	}{
		{"90", 90},
		{"1:30", 90},
		{"1:01:01", 3661},
		{"0:0:5", 5},
		{"0", 0},
		{"10:00", 600},
		{"2:00:00", 7200},
		{"00:00:30", 30},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			seconds, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, seconds)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"letters", "abc"},
		{"mixed", "1:3x"},
		{"too many fields", "1:2:3:4"},
		{"negative", "-5"},
		{"negative field", "1:-30"},
		{"trailing colon", "1:30:"},
		{"whitespace", " 90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrArgs),
				"parse errors should carry the ARGS code")
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		expect  string
	}{
		{0, "0:00:00"},
		{5, "0:00:05"},
		{90, "0:01:30"},
		{600, "0:10:00"},
		{3661, "1:01:01"},
		{7322, "2:02:02"},
		{36000, "10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, Format(tt.seconds))
		})
	}
}

func TestFormat_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "0:00:00", Format(-1))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, seconds := range []int{1, 59, 60, 3599, 3600, 3661} {
		parsed, err := Parse(Format(seconds))
		require.NoError(t, err)
		assert.Equal(t, seconds, parsed)
	}
}
