package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate a configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
		},
		Action: validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "%s %s\n", fancy.ValidText("Configuration file is valid:"), configPath)
	if cmd.Bool("tree") {
		_, err = fmt.Fprintln(out, cfg.ToTree().String())
		return err
	}

	_, err = fmt.Fprintln(out, renderConfigSummary(configPath, cfg))
	return err
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	groups := 0
	for _, r := range cfg.Rounds {
		groups += len(r.Groups)
	}

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Main event: %d\n", cfg.MainEventID)
	fmt.Fprintf(&summary, "- Title: %s\n", cfg.TitleTemplate)
	fmt.Fprintf(&summary, "- Weekly: %t\n", cfg.IsWeeklies)
	fmt.Fprintf(&summary, "- Rounds: %d\n", len(cfg.Rounds))
	fmt.Fprintf(&summary, "- Group windows: %d\n", groups)
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
