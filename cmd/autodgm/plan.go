package main

import (
	"context"
	"fmt"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/rounds"
	"github.com/urfave/cli/v3"
)

const startDateLayout = "2006-01-02"

// weekFlags select which week of the series is created
func weekFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "Path to the weekly configuration file (.toml, .yaml or .yml)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "start-date",
			Aliases:  []string{"s"},
			Usage:    "Date of the first week, YYYY-MM-DD",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "week",
			Aliases:  []string{"w"},
			Usage:    "Week number, the first week is 1",
			Required: true,
		},
	}
}

func newPlanCmd() *cli.Command {
	return &cli.Command{
		Name:   "plan",
		Usage:  "Print what a run would create, without opening the site",
		Flags:  weekFlags(),
		Action: planAction,
	}
}

func planAction(ctx context.Context, cmd *cli.Command) error {
	_, plan, err := loadPlan(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, plan.String())
	return err
}

// loadPlan loads the configuration and derives the plan of the selected week
func loadPlan(cmd *cli.Command) (*config.Config, *rounds.EventPlan, error) {
	cfg, err := config.NewConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if err := applyDocumentLogging(cmd, cfg.Logging); err != nil {
		return nil, nil, err
	}

	startDate, err := time.ParseInLocation(startDateLayout, cmd.String("start-date"), time.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --start-date: %w", err)
	}

	plan, err := rounds.NewEventPlan(cfg, startDate, cmd.Int("week"))
	if err != nil {
		return nil, nil, err
	}
	return cfg, plan, nil
}
