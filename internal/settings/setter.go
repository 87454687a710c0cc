package settings

import (
	"context"
	"fmt"
	"log/slog"
)

// Setter applies settings against a Site, one after the other.
type Setter struct {
	site   Site
	logger *slog.Logger
}

// SetterOption configures a Setter
type SetterOption func(*Setter)

// WithLogHandler sets the log handler of the Setter
func WithLogHandler(handler slog.Handler) SetterOption {
	return func(s *Setter) {
		if handler != nil {
			s.logger = slog.New(handler)
		}
	}
}

// WithLogger sets the logger of the Setter
func WithLogger(logger *slog.Logger) SetterOption {
	return func(s *Setter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSetter creates a Setter for the site.
func NewSetter(site Site, opts ...SetterOption) *Setter {
	s := &Setter{
		site:   site,
		logger: slog.Default().With("component", "setter"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Site returns the site the Setter applies settings against
func (s *Setter) Site() Site {
	return s.site
}

// Set navigates to path and applies the settings in order. The first failing setting aborts
// the rest.
func (s *Setter) Set(ctx context.Context, path string, settings ...AtomicSetting) error {
	if err := s.site.Navigate(ctx, path); err != nil {
		return fmt.Errorf("navigate to %q: %w", path, err)
	}
	if err := s.site.WaitReady(ctx); err != nil {
		return fmt.Errorf("wait for %q: %w", path, err)
	}

	for i, setting := range settings {
		s.logger.Debug("Applying setting", "path", path, "step", i+1, "setting", setting.String())
		if err := setting.Apply(ctx, s.site); err != nil {
			return fmt.Errorf("step %d (%s) on %q: %w", i+1, setting.Kind, path, err)
		}
	}
	return nil
}

// Apply applies every setting of the bundle on its page.
func (s *Setter) Apply(ctx context.Context, bundle BundledSetting) error {
	s.logger.Info("Applying settings", "name", bundle.Name(), "path", bundle.Path(), "steps", bundle.Len())
	if err := s.Set(ctx, bundle.Path(), bundle.settings...); err != nil {
		return fmt.Errorf("%s settings: %w", bundle.Name(), err)
	}
	return nil
}

// ApplyAll applies the bundles in the order given.
func (s *Setter) ApplyAll(ctx context.Context, bundles ...BundledSetting) error {
	for _, bundle := range bundles {
		if err := s.Apply(ctx, bundle); err != nil {
			return err
		}
	}
	return nil
}
