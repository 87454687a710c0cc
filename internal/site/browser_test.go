package site

import (
	"context"
	"testing"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	b, err := New("https://discgolfmetrix.com/", WithHeadless(true), WithSettleDelay(250*time.Millisecond))
	require.NoError(t, err)
	assert.True(t, b.headless)
	assert.Equal(t, 250*time.Millisecond, b.settleDelay)

	_, err = New("discgolfmetrix.com")
	require.Error(t, err)

	_, err = New("://nope")
	require.Error(t, err)
}

func TestBrowser_URL(t *testing.T) {
	t.Parallel()

	b, err := New("https://discgolfmetrix.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://discgolfmetrix.com/", b.URL(""))
	assert.Equal(t, "https://discgolfmetrix.com/?u=login", b.URL("u=login"))
	assert.Equal(t,
		"https://discgolfmetrix.com/?u=competition_edit_groups&ID=123",
		b.URL("u=competition_edit_groups&ID=123"),
	)
	assert.Equal(t, "https://discgolfmetrix.com/?u=login", b.URL("?u=login"))
}

func TestBrowser_NotStarted(t *testing.T) {
	t.Parallel()

	b, err := New("https://discgolfmetrix.com/", WithSettleDelay(0))
	require.NoError(t, err)

	require.Error(t, b.Navigate(t.Context(), "u=login"))
	require.Error(t, b.WaitReady(t.Context()))
	require.NoError(t, b.Close())
}

func TestBrowser_CanceledContext(t *testing.T) {
	t.Parallel()

	b, err := New("https://discgolfmetrix.com/", WithSettleDelay(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, b.Navigate(ctx, "u=login"), context.Canceled)
	require.ErrorIs(t, b.Click(ctx, "i01"), context.Canceled)
	require.ErrorIs(t, b.WaitReady(ctx), context.Canceled)
	require.ErrorIs(t, b.RunScript(ctx, settings.ScriptClickElement, "gm-save"), context.Canceled)
}

func TestScripts(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`document.getElementById("i01").value = "2023-03-07"`,
		setValueByIDScript("i01", "2023-03-07"),
	)
	assert.Equal(t,
		`document.getElementById("i03").value = "O'Neill's \"Open\""`,
		setValueByIDScript("i03", `O'Neill's "Open"`),
	)
	assert.Equal(t,
		`document.querySelectorAll("[data-group-number=\"34\"]")[0].value = "18:45"`,
		setFirstValueByAttributeScript("data-group-number", "34", "18:45"),
	)
	assert.Equal(t,
		`document.getElementsByName("copy_players_from")[0].value = ""`,
		setComboByNameScript("copy_players_from", ""),
	)
	assert.Contains(t, selectByValueScript("i01", "47"), `document.getElementById("i01"), "47"`)
	assert.Contains(t, selectByValueScript("i01", "47"), `new Event("change"`)
}

func TestNamedScript(t *testing.T) {
	t.Parallel()

	expr, err := namedScript(settings.ScriptOpenAccordionPanel, 2)
	require.NoError(t, err)
	assert.Equal(t, "("+string(settings.ScriptOpenAccordionPanel)+")(2)", expr)

	expr, err = namedScript(settings.ScriptClickElement, "id_show_groups")
	require.NoError(t, err)
	assert.Equal(t, "("+string(settings.ScriptClickElement)+`)("id_show_groups")`, expr)

	_, err = namedScript(settings.ScriptClickElement, make(chan int))
	require.Error(t, err)
}
