// Package tui implements the interactive timer view and its update loop.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds the Timer, the warning threshold, and display state
//   - Update: Processes messages (keystrokes, tick events, resizes)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// Time enters the loop through a dedicated Ticker goroutine that emits one
// event per second into a buffered channel:
//
//  1. waitForTick() blocks on the channel and delivers one tickMsg
//  2. Update applies the tick via Timer.Advance and re-arms waitForTick
//  3. View() re-renders every stage row from the new state
//
// Ticks are never dropped: if a slow frame stalls the loop, the backlog
// drains one tick per update pass and the display fast-forwards to stay
// wall-clock accurate. The ticker does not correct for scheduling drift
// and has no shutdown signal; it is abandoned when the process exits.
//
// All Timer mutation and all rendering happen on the update loop, so the
// tick channel is the only synchronized edge. Advance returning false ends
// the loop: the frame rendered after that pass is the final one.
//
// # Keyboard Shortcuts
//
// Raw key events are translated into a closed Action set in
// keybindings.go; unrecognized keys are ignored:
//
//	space        - Pause / resume
//	q, Esc, Ctrl+C - Quit
//
// # Rendering
//
// Each stage renders as a row: name, proportional progress bar, and a
// remaining/total label in H:MM:SS. The active stage is green, switching
// to yellow once remaining time drops inside the warning threshold;
// inactive stages are dimmed. While paused, every label reads "Paused".
package tui
