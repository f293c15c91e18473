package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedtimer/staged/internal/config"
	"github.com/stagedtimer/staged/internal/errors"
	"github.com/stagedtimer/staged/internal/timer"
)

func TestBuildStages_FromFlags(t *testing.T) {
	stages, err := buildStages(&config.Config{},
		[]string{"develop", "stop", "fix"},
		[]string{"6:30", "30", "5:00"},
		"")
	require.NoError(t, err)

	assert.Equal(t, []timer.Stage{
		{Name: "develop", Duration: 390},
		{Name: "stop", Duration: 30},
		{Name: "fix", Duration: 300},
	}, stages)
}

func TestBuildStages_CountMismatch(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		times []string
	}{
		{"more names", []string{"a", "b"}, []string{"10"}},
		{"more times", []string{"a"}, []string{"10", "20"}},
		{"times only", nil, []string{"10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildStages(&config.Config{}, tt.names, tt.times, "")
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrArgs))
		})
	}
}

func TestBuildStages_NoStages(t *testing.T) {
	_, err := buildStages(&config.Config{}, nil, nil, "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrArgs))
}

func TestBuildStages_UnparsableDuration(t *testing.T) {
	_, err := buildStages(&config.Config{}, []string{"a"}, []string{"ten"}, "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrArgs))
}

func TestBuildStages_FromPreset(t *testing.T) {
	cfg := &config.Config{
		Presets: map[string]config.Preset{
			"tea": {Stages: []config.PresetStage{
				{Name: "steep", Time: "3:00"},
				{Name: "cool", Time: "60"},
			}},
		},
	}

	stages, err := buildStages(cfg, nil, nil, "tea")
	require.NoError(t, err)

	// Preset resolution equals the equivalent flag list
	fromFlags, err := buildStages(&config.Config{},
		[]string{"steep", "cool"},
		[]string{"3:00", "60"},
		"")
	require.NoError(t, err)
	assert.Equal(t, fromFlags, stages)
}

func TestBuildStages_PresetExcludesFlags(t *testing.T) {
	cfg := &config.Config{
		Presets: map[string]config.Preset{
			"tea": {Stages: []config.PresetStage{{Name: "steep", Time: "60"}}},
		},
	}

	_, err := buildStages(cfg, []string{"a"}, []string{"10"}, "tea")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrArgs))
}

func TestResolveWarn(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *config.Config
		flag   string
		expect int
	}{
		{"disabled by default", &config.Config{}, "", 0},
		{"flag only", &config.Config{}, "1:00", 60},
		{"config default", &config.Config{Warn: "30"}, "", 30},
		{"flag overrides config", &config.Config{Warn: "30"}, "10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := resolveWarn(tt.cfg, tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, seconds)
		})
	}
}

func TestResolveWarn_InvalidFlag(t *testing.T) {
	_, err := resolveWarn(&config.Config{}, "soon")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrArgs))
}
