package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stagedtimer/staged/internal/config"
	"github.com/stagedtimer/staged/internal/duration"
	"github.com/stagedtimer/staged/internal/errors"
	"github.com/stagedtimer/staged/internal/logger"
	"github.com/stagedtimer/staged/internal/timer"
	"github.com/stagedtimer/staged/internal/tui"
)

// Root command flags
var (
	nameFlags  []string
	timeFlags  []string
	warnFlag   string
	presetFlag string
	configFlag string
)

// rootCmd runs the timer itself.
var rootCmd = &cobra.Command{
	Use:   "staged",
	Short: "Multi-stage countdown timer",
	Long: `Configurable multi-stage timer for film development or workouts.

Stages are given as paired --name/--time flags and run in argument order.
Durations accept bare seconds or colon-separated H:M:S, e.g. 90, 1:30,
or 1:01:01.

Keyboard shortcuts:
  space       Pause / resume
  q / Esc     Quit

Examples:
  staged -n develop -t 6:30 -n stop -t 30 -n fix -t 5:00
  staged -n plank -t 60 -n rest -t 30 --warn 10
  staged --preset film`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(nameFlags, timeFlags, warnFlag, presetFlag, configFlag)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&nameFlags, "name", "n", nil, "name of a timer stage (repeatable)")
	rootCmd.Flags().StringArrayVarP(&timeFlags, "time", "t", nil, "duration of a timer stage (repeatable)")
	rootCmd.Flags().StringVarP(&warnFlag, "warn", "w", "", "remaining-time threshold for the warning color (duration grammar)")
	rootCmd.Flags().StringVar(&presetFlag, "preset", "", "run a named stage list from the config file")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default ~/.config/staged/config.yaml)")
}

// Execute runs the root command and maps failures to a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runTimer validates input, builds the timer, and drives the TUI to
// completion. Natural completion and user quit both return nil.
func runTimer(names, times []string, warn, preset, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	stages, err := buildStages(cfg, names, times, preset)
	if err != nil {
		return err
	}

	warnSeconds, err := resolveWarn(cfg, warn)
	if err != nil {
		return err
	}

	tm, err := timer.New(stages)
	if err != nil {
		return err
	}

	// Raw mode and the alternate screen need a real terminal; refuse
	// before touching it rather than fail partway into setup.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"Run staged directly in an interactive terminal")
	}

	model := tui.NewModel(tm, warnSeconds, tui.NewTicker(time.Second), logger.NewEnvLogger("[tui]"))

	// The bubbletea runtime enters raw mode and the alternate screen on
	// start and restores both on every exit path, including errors.
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "Terminal session failed")
	}

	if m, ok := final.(tui.Model); ok && m.Finished() {
		fmt.Println("All stages complete.")
	}

	return nil
}

// buildStages assembles the stage list from either a preset or paired
// --name/--time flags. The two sources are mutually exclusive.
func buildStages(cfg *config.Config, names, times []string, preset string) ([]timer.Stage, error) {
	if preset != "" {
		if len(names) > 0 || len(times) > 0 {
			return nil, errors.New(errors.ErrArgs,
				"--preset cannot be combined with --name/--time",
				"Run either a preset or an explicit stage list, not both")
		}
		return cfg.Stages(preset)
	}

	if len(names) != len(times) {
		return nil, errors.New(errors.ErrArgs,
			"Cannot match unequal number of timers and names",
			fmt.Sprintf("Got %d --name and %d --time flags; pass one --time for every --name", len(names), len(times)))
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrArgs,
			"No stages to run",
			"Pass at least one --name/--time pair, or use --preset")
	}

	stages := make([]timer.Stage, 0, len(names))
	for i, name := range names {
		seconds, err := duration.Parse(times[i])
		if err != nil {
			return nil, err
		}
		stages = append(stages, timer.Stage{Name: name, Duration: seconds})
	}

	return stages, nil
}

// resolveWarn picks the warning threshold: the flag wins over the config
// default; both absent means disabled.
func resolveWarn(cfg *config.Config, flag string) (int, error) {
	if flag == "" {
		return cfg.WarnSeconds()
	}
	return duration.Parse(flag)
}
