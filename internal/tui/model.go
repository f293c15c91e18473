package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagedtimer/staged/internal/logger"
	"github.com/stagedtimer/staged/internal/timer"
)

// tickMsg signals one elapsed second from the ticker.
type tickMsg time.Time

// defaultWidth is assumed until the first WindowSizeMsg arrives.
const defaultWidth = 80

// Model is the Bubble Tea model driving the timer loop. It owns the Timer
// for its whole lifetime; every mutation and every render happens on the
// update loop, and the tick channel is the only cross-goroutine edge.
type Model struct {
	timer  *timer.Timer
	warn   int
	ticker *Ticker
	log    logger.Logger

	width    int
	quitting bool
	finished bool

	activeBar progress.Model
	warnBar   progress.Model
	mutedBar  progress.Model
}

// NewModel creates the timer model. warn is the warning threshold in
// seconds, 0 disables it.
func NewModel(tm *timer.Timer, warn int, ticker *Ticker, log logger.Logger) Model {
	m := Model{
		timer:     tm,
		warn:      warn,
		ticker:    ticker,
		log:       log,
		width:     defaultWidth,
		activeBar: newBar(ColorActive),
		warnBar:   newBar(ColorWarning),
		mutedBar:  newBar(ColorMuted),
	}
	return m
}

// newBar builds a progress bar with a solid fill in the given color.
func newBar(color lipgloss.Color) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
	)
	if Monochrome() {
		bar.Full = '#'
		bar.Empty = '-'
	}
	return bar
}

// Init starts the background ticker and arms the first tick receive.
func (m Model) Init() tea.Cmd {
	m.log.Debug("starting loop: %d stages, warn threshold %ds", m.timer.Len(), m.warn)
	m.ticker.Start()
	return m.waitForTick()
}

// waitForTick returns a command that blocks on the tick channel and
// delivers exactly one tick as a message. It is re-armed after every tick
// so a backlog drains one tick per update pass, never losing a second.
func (m Model) waitForTick() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(<-m.ticker.C())
	}
}

// Update handles one message. Within a pass the ordering is strict:
// state mutation first, then the render that bubbletea performs after
// Update returns.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch ActionFor(msg.String()) {
		case ActionQuit:
			// User-initiated quit skips the final render.
			m.quitting = true
			return m, tea.Quit

		case ActionTogglePause:
			m.timer.TogglePause()
			m.log.Debug("paused: %v", m.timer.Paused())
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if !m.timer.Advance() {
			// Natural completion: the frame rendered after this
			// pass is the final one.
			m.finished = true
			return m, tea.Quit
		}
		return m, m.waitForTick()
	}

	return m, nil
}

// View renders one frame from the current timer state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderFrame()
}

// Finished reports whether the run ended by completing all stages rather
// than by user quit.
func (m Model) Finished() bool {
	return m.finished
}
