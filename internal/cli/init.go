package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/stagedtimer/staged/internal/config"
	"github.com/stagedtimer/staged/internal/duration"
	"github.com/stagedtimer/staged/internal/errors"
)

var initForce bool

// initCmd interactively adds a preset to the config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the staged config file",
	Long: `Interactively add a stage preset and default warning threshold to the
staged config file (~/.config/staged/config.yaml by default).

Presets are reusable stage lists runnable with 'staged --preset NAME'.

Examples:
  staged init
  staged init --config ./staged.yaml
  staged init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(configFlag, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing preset with the same name")
	rootCmd.AddCommand(initCmd)
}

// initCommand prompts for a preset and writes it to the config file.
func initCommand(configPath string, force bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var presetName, stagesText, warnText string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Preset name").
				Description("Runnable later with 'staged --preset NAME'").
				Placeholder("film").
				Value(&presetName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("preset name is required")
					}
					if strings.ContainsAny(s, " \t\n") {
						return fmt.Errorf("preset name cannot contain whitespace")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Stages").
				Description("One stage per line: NAME DURATION (e.g. 'develop 6:30')").
				Placeholder("develop 6:30\nstop 30\nfix 5:00").
				Value(&stagesText).
				Validate(func(s string) error {
					_, err := parseStageLines(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default warning threshold (optional)").
				Description("Duration grammar; leave empty to disable").
				Placeholder("10").
				Value(&warnText).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := duration.Parse(strings.TrimSpace(s))
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"")
	}

	stages, err := parseStageLines(stagesText)
	if err != nil {
		return err
	}

	if cfg.Presets == nil {
		cfg.Presets = make(map[string]config.Preset)
	}
	if _, exists := cfg.Presets[presetName]; exists && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Preset '%s' already exists", presetName),
			"Use --force to overwrite it")
	}
	cfg.Presets[presetName] = config.Preset{Stages: stages}

	if warn := strings.TrimSpace(warnText); warn != "" {
		cfg.Warn = warn
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Wrote preset '%s' (%d stages) to %s\n", presetName, len(stages), path)
	return nil
}

// parseStageLines parses the init form's stage text: one stage per line,
// the last field is the duration and everything before it the name.
func parseStageLines(text string) ([]config.PresetStage, error) {
	var stages []config.PresetStage

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.New(errors.ErrArgs,
				fmt.Sprintf("Cannot parse stage line '%s'", line),
				"Use 'NAME DURATION', e.g. 'develop 6:30'")
		}

		token := fields[len(fields)-1]
		if _, err := duration.Parse(token); err != nil {
			return nil, err
		}

		stages = append(stages, config.PresetStage{
			Name: strings.Join(fields[:len(fields)-1], " "),
			Time: token,
		})
	}

	if len(stages) == 0 {
		return nil, errors.New(errors.ErrArgs,
			"No stages given",
			"Enter at least one 'NAME DURATION' line")
	}

	return stages, nil
}
