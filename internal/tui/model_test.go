package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedtimer/staged/internal/logger"
	"github.com/stagedtimer/staged/internal/timer"
)

// newTestModel builds a model over the given stages with an idle ticker.
func newTestModel(t *testing.T, warn int, stages ...timer.Stage) Model {
	t.Helper()
	tm, err := timer.New(stages)
	require.NoError(t, err)
	return NewModel(tm, warn, NewTicker(time.Hour), logger.Noop())
}

// update applies a message and returns the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestUpdate_TickAdvancesActiveStage(t *testing.T) {
	m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 3})

	m, cmd := update(t, m, tickMsg(time.Now()))

	s, ok := m.timer.StageAt(0)
	require.True(t, ok)
	assert.Equal(t, 1, s.Elapsed)
	assert.False(t, m.Finished())

	// The loop re-arms the tick receive so a backlog drains one per pass
	assert.NotNil(t, cmd)
}

func TestUpdate_CompletionQuitsAfterFinalRender(t *testing.T) {
	m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 1})

	m, cmd := update(t, m, tickMsg(time.Now()))

	assert.True(t, m.Finished())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// Natural completion still renders a final frame
	assert.NotEmpty(t, m.View())
}

func TestUpdate_QuitKeySkipsFinalRender(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 10})

			m, cmd := update(t, m, key)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
			assert.False(t, m.Finished())
		})
	}
}

func TestUpdate_SpaceTogglesPause(t *testing.T) {
	m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 10})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.timer.Paused())

	// Ticks while paused are consumed without progress
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tickMsg(time.Now()))
	}
	s, _ := m.timer.StageAt(0)
	assert.Zero(t, s.Elapsed)

	// Unpause, one tick advances by exactly one second
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tickMsg(time.Now()))
	s, _ = m.timer.StageAt(0)
	assert.Equal(t, 1, s.Elapsed)
}

func TestUpdate_IgnoredKeyHasNoEffect(t *testing.T) {
	m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 10})

	before := m.timer.Stages()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.Equal(t, before, m.timer.Stages())
	assert.False(t, m.timer.Paused())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, 0, timer.Stage{Name: "a", Duration: 10})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
}

func TestScenario_TwoStagesRunToCompletion(t *testing.T) {
	// Stages [("A",3), ("B",2)], warning threshold 1: after 3 ticks B is
	// active, after 5 the loop terminates.
	m := newTestModel(t, 1,
		timer.Stage{Name: "A", Duration: 3},
		timer.Stage{Name: "B", Duration: 2},
	)

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, tickMsg(time.Now()))
	}
	assert.Equal(t, 1, m.timer.Current())
	assert.False(t, m.Finished())

	m, _ = update(t, m, tickMsg(time.Now()))
	m, cmd := update(t, m, tickMsg(time.Now()))

	assert.True(t, m.Finished())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
