package run

import (
	"errors"
	"testing"

	"github.com/atlanticdynamic/autodgm/internal/credentials"
	"github.com/atlanticdynamic/autodgm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("fills the form", func(t *testing.T) {
		site := testutil.NewRecordingSite()
		err := Login(t.Context(), site, credentials.Credentials{Username: "td", Password: "pw"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"navigate u=login",
			"wait",
			"attr name=email td",
			"attr name=password pw",
			"submit",
			"wait",
		}, site.Calls())
	})

	t.Run("form step fails", func(t *testing.T) {
		site := testutil.NewRecordingSite()
		submitErr := errors.New("no submit button")
		site.FailOn["submit"] = submitErr

		err := Login(t.Context(), site, credentials.Credentials{Username: "td", Password: "pw"}, nil, nil)
		require.ErrorIs(t, err, submitErr)
		assert.Contains(t, err.Error(), "login as td")
	})

	t.Run("login page unreachable", func(t *testing.T) {
		site := testutil.NewRecordingSite()
		navErr := errors.New("net::ERR_INTERNET_DISCONNECTED")
		site.FailOn["navigate"] = navErr

		err := Login(t.Context(), site, credentials.Credentials{}, &stubPrompter{interactive: true}, nil)
		require.ErrorIs(t, err, navErr)
	})

	t.Run("manual login aborted", func(t *testing.T) {
		site := testutil.NewRecordingSite()
		abortErr := errors.New("interrupted")
		err := Login(t.Context(), site, credentials.Credentials{}, &stubPrompter{interactive: true, err: abortErr}, nil)
		require.ErrorIs(t, err, abortErr)
	})
}
