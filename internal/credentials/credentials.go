// Package credentials resolves the site login, from the environment or from the operator.
package credentials

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is shared with the rest of the tool's environment variables.
const EnvPrefix = "AUTODGM_"

var (
	ErrNoCredentials  = errors.New("no credentials available and no interactive terminal")
	ErrEmptyPassword  = errors.New("empty password")
	ErrNotInteractive = errors.New("terminal is not interactive")
)

// Credentials is the login of the site account.
type Credentials struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Complete reports whether both username and password are known
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// String never includes the password
func (c Credentials) String() string {
	switch {
	case c.Username == "":
		return "<no credentials>"
	case c.Password == "":
		return c.Username + " (no password)"
	default:
		return c.Username + " (password set)"
	}
}

// FromEnvironment reads AUTODGM_USERNAME and AUTODGM_PASSWORD
func FromEnvironment() (Credentials, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromMap reads the credentials from a map of environment variables
func FromMap(vars map[string]string) (Credentials, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Credentials, error) {
	var c Credentials
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	return c, nil
}

// Resolve completes partial credentials through the prompter. A known username with no
// password asks for the password. Without a username the credentials stay empty and the
// caller falls back to a manual login.
func Resolve(c Credentials, prompter Prompter) (Credentials, error) {
	if c.Complete() || c.Username == "" {
		return c, nil
	}
	if prompter == nil || !prompter.Interactive() {
		return Credentials{}, fmt.Errorf("%w: password for %s", ErrNoCredentials, c.Username)
	}

	password, err := prompter.ReadPassword(fmt.Sprintf("Password for %s: ", c.Username))
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	c.Password = password
	return c, nil
}
