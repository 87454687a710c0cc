package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable read by the tool.
const EnvPrefix = "AUTODGM_"

// Environment holds the settings read from environment variables.
type Environment struct {
	// BaseURL is the site root every page path is appended to.
	BaseURL string `env:"BASE_URL" envDefault:"https://discgolfmetrix.com/"`

	// SettleDelay is waited after each page action before the page is considered ready.
	SettleDelay time.Duration `env:"SETTLE_DELAY" envDefault:"1s"`

	Headless bool   `env:"HEADLESS"`
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadEnvironment reads the environment of the process
func LoadEnvironment() (Environment, error) {
	return parseEnvironment(env.Options{Prefix: EnvPrefix})
}

// LoadEnvironmentFrom reads the environment from a map, keys include the prefix
func LoadEnvironmentFrom(vars map[string]string) (Environment, error) {
	return parseEnvironment(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parseEnvironment(opts env.Options) (Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Environment{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := e.Validate(); err != nil {
		return Environment{}, err
	}
	return e, nil
}

// Validate checks the base URL and the settle delay
func (e Environment) Validate() error {
	u, err := url.Parse(e.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %sBASE_URL %q is not an absolute URL", ErrFailedToLoadConfig, EnvPrefix, e.BaseURL)
	}
	if e.SettleDelay < 0 {
		return fmt.Errorf("%w: %sSETTLE_DELAY %s is negative", ErrFailedToLoadConfig, EnvPrefix, e.SettleDelay)
	}
	if _, err := LogLevelFromString(e.LogLevel); err != nil {
		return fmt.Errorf("%w: %sLOG_LEVEL: %w", ErrFailedToLoadConfig, EnvPrefix, err)
	}
	return nil
}
