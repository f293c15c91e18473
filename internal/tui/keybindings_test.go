package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key    string
		expect Action
	}{
		{"esc", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"q", ActionQuit},
		{" ", ActionTogglePause},
		// Everything outside the closed set is ignored
		{"x", ActionIgnored},
		{"enter", ActionIgnored},
		{"up", ActionIgnored},
		{"ctrl+d", ActionIgnored},
		{"Q", ActionIgnored},
		{"", ActionIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expect, ActionFor(tt.key))
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "toggle-pause", ActionTogglePause.String())
	assert.Equal(t, "ignored", ActionIgnored.String())
	assert.Equal(t, "ignored", Action(99).String())
}
