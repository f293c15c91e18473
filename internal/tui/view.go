package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/stagedtimer/staged/internal/duration"
	"github.com/stagedtimer/staged/internal/timer"
)

// labelWidth is the rendered width of a "H:MM:SS / H:MM:SS" label.
const labelWidth = 17

// minBarWidth keeps bars drawable on very narrow terminals.
const minBarWidth = 10

// renderFrame renders the complete timer view: header, one row per stage
// in argument order, footer.
func (m Model) renderFrame() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	stages := m.timer.Stages()
	nameWidth := maxNameWidth(stages)
	for i, s := range stages {
		b.WriteString(m.renderStage(s, i == m.timer.Current(), nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with the overall remaining time.
func (m Model) renderHeader() string {
	remaining := 0
	for _, s := range m.timer.Stages() {
		remaining += s.Remaining()
	}

	title := TitleStyle.Render("staged")
	stats := MutedLabelStyle.Render(fmt.Sprintf(" | %d stages | %s left",
		m.timer.Len(), duration.Format(remaining)))

	return title + stats
}

// renderStage renders one stage row: padded name, proportional bar, and
// either the remaining/total label or the paused indicator.
func (m Model) renderStage(s timer.Stage, active bool, nameWidth int) string {
	warning := active && m.warn > 0 && s.Remaining() <= m.warn

	name := StageLabelStyle(active, warning).Render(fmt.Sprintf("%-*s", nameWidth, s.Name))

	bar := m.barFor(active, warning)
	bar.Width = m.barWidth(nameWidth)
	rendered := bar.ViewAs(s.CompletionRatio())

	var label string
	if m.timer.Paused() {
		label = PausedStyle.Render("Paused")
	} else {
		label = StageLabelStyle(active, warning).Render(
			duration.Format(s.Remaining()) + " / " + duration.Format(s.Duration))
	}

	return name + " " + rendered + " " + label
}

// renderFooter renders the key help line.
func (m Model) renderFooter() string {
	return FooterStyle.Render("space pause | q/esc quit")
}

// barFor picks the progress bar matching the stage state.
func (m Model) barFor(active, warning bool) progress.Model {
	switch {
	case !active:
		return m.mutedBar
	case warning:
		return m.warnBar
	default:
		return m.activeBar
	}
}

// barWidth computes the bar width left over after the name and label
// columns, clamped so narrow terminals still get a bar.
func (m Model) barWidth(nameWidth int) int {
	width := m.width - nameWidth - labelWidth - 2
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// maxNameWidth returns the widest stage name, for column alignment.
func maxNameWidth(stages []timer.Stage) int {
	widest := 0
	for _, s := range stages {
		if len(s.Name) > widest {
			widest = len(s.Name)
		}
	}
	return widest
}
