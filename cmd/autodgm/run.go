package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/credentials"
	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/atlanticdynamic/autodgm/internal/logging"
	"github.com/atlanticdynamic/autodgm/internal/logging/writers"
	"github.com/atlanticdynamic/autodgm/internal/rounds"
	"github.com/atlanticdynamic/autodgm/internal/run"
	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/atlanticdynamic/autodgm/internal/site"
	"github.com/urfave/cli/v3"
)

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Create and configure the event and rounds of one week",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "Run Chrome without a window (needs AUTODGM_USERNAME and AUTODGM_PASSWORD)",
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "Write the complete JSON log history of the run to this file",
			},
		}, weekFlags()...),
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	env, err := config.LoadEnvironment()
	if err != nil {
		return err
	}
	if cmd.IsSet("headless") {
		env.Headless = cmd.Bool("headless")
	}

	_, plan, err := loadPlan(cmd)
	if err != nil {
		return err
	}
	logger := slog.Default()

	prompter := credentials.NewTerminal(os.Stdin, os.Stderr)
	creds, err := credentials.FromEnvironment()
	if err != nil {
		return err
	}
	creds, err = credentials.Resolve(creds, prompter)
	if err != nil {
		return err
	}
	if env.Headless && !creds.Complete() {
		return fmt.Errorf("headless runs need credentials: %w", credentials.ErrNoCredentials)
	}

	browser, err := site.New(env.BaseURL,
		site.WithHeadless(env.Headless),
		site.WithSettleDelay(env.SettleDelay),
		site.WithLogHandler(logger.Handler()),
	)
	if err != nil {
		return err
	}
	if err := browser.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			logger.Warn("Failed to close browser", "error", err)
		}
	}()

	r, err := run.New(plan, browser, logger.Handler(),
		run.WithCredentials(creds),
		run.WithPrompter(prompter),
	)
	if err != nil {
		return err
	}

	result, runErr := r.Execute(ctx)
	if path := cmd.String("history"); path != "" {
		if err := writeHistory(r, path); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	out := cmd.Root().Writer
	editURL := func(id string) string {
		return browser.URL(settings.NewBundledSetting("", rounds.SubPathBasic, id).Path())
	}
	if result.EventID != "" {
		fmt.Fprintf(out, "%s %s\n", fancy.EventText("Event "+result.EventID), editURL(result.EventID))
	}
	for i, id := range result.RoundIDs {
		fmt.Fprintf(out, "%s %s\n", fancy.RoundText(fmt.Sprintf("Round %d: %s", i+1, id)), editURL(id))
	}
	if runErr != nil {
		fmt.Fprintln(out, fancy.ErrorText("Run failed in state "+r.GetState()))
		return runErr
	}
	fmt.Fprintln(out, fancy.ValidText("Run completed"))
	return nil
}

func writeHistory(r *run.Run, path string) error {
	w, err := writers.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := r.PlaybackLogs(logging.SetupHandlerJSON("debug", w)); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
