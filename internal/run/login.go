package run

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/autodgm/internal/credentials"
	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// Login form of the site.
const (
	LoginPath          = "u=login"
	LoginNameAttribute = "name"
	FieldLoginEmail    = "email"
	FieldLoginPassword = "password"

	manualLoginPrompt = "Log in to the site in the browser window, then press Enter to continue..."
)

// Login opens the login page and signs in. Complete credentials fill the form, otherwise the
// operator logs in by hand and confirms on the prompter.
func Login(
	ctx context.Context,
	site settings.Site,
	creds credentials.Credentials,
	prompter credentials.Prompter,
	logger *slog.Logger,
) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := site.Navigate(ctx, LoginPath); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}
	if err := site.WaitReady(ctx); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	if !creds.Complete() {
		if prompter == nil || !prompter.Interactive() {
			return credentials.ErrNoCredentials
		}
		logger.Info("Waiting for manual login")
		if err := prompter.WaitForConfirmation(ctx, manualLoginPrompt); err != nil {
			return fmt.Errorf("manual login: %w", err)
		}
		logger.Info("Manual login confirmed")
		return nil
	}

	logger.Info("Logging in", "user", creds.Username)
	steps := []func() error{
		func() error {
			return site.SetFirstValueByAttribute(ctx, LoginNameAttribute, FieldLoginEmail, creds.Username)
		},
		func() error {
			return site.SetFirstValueByAttribute(ctx, LoginNameAttribute, FieldLoginPassword, creds.Password)
		},
		func() error { return site.Submit(ctx) },
		func() error { return site.WaitReady(ctx) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("login as %s: %w", creds.Username, err)
		}
	}
	return nil
}
