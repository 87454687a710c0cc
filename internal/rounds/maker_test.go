package rounds

import (
	"errors"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/atlanticdynamic/autodgm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaker(site settings.Site) *Maker {
	logger := slog.New(slog.NewTextHandler(&testutil.ThreadSafeBuffer{}, nil))
	return NewMaker(settings.NewSetter(site, settings.WithLogger(logger)), WithMakerLogger(logger))
}

func TestCreationRequest(t *testing.T) {
	t.Parallel()

	req := CreationRequest{
		ParentID:   "2455221",
		RecordType: RecordTypeMultiRoundEvent,
		Date:       time.Date(2023, time.May, 2, 17, 0, 0, 0, time.UTC),
		Title:      "Runde 9",
		Comment:    "Main comment",
	}

	assert.Equal(t, "u=competition_add&competitiontype=&parentid=2455221&record_type=4", req.Path())
	assert.Equal(t, []settings.AtomicSetting{
		settings.SetDate("i01", req.Date),
		settings.SetTime("i02", req.Date),
		settings.SetText("i03", "Runde 9"),
		settings.SetText("i04", "Main comment"),
		settings.SelectComboByName("copy_players_from", ""),
		settings.Submit(),
	}, req.Settings())

	req.RecordType = RecordTypeRound
	assert.Equal(t, "u=competition_add&competitiontype=&parentid=2455221&record_type=1", req.Path())
}

func TestRecordType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "round", RecordTypeRound.String())
	assert.Equal(t, "multi-round event", RecordTypeMultiRoundEvent.String())
	assert.Equal(t, "record type 9", RecordType(9).String())
}

func TestParseCreationResponse(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		id, err := ParseCreationResponse(url.Values{"message_ok": {"Saved"}, "ID": {"2561000", "ignored"}})
		require.NoError(t, err)
		assert.Equal(t, "2561000", id)
	})

	t.Run("success marker with empty value", func(t *testing.T) {
		id, err := ParseCreationResponse(url.Values{"message_ok": {""}, "ID": {"7"}})
		require.NoError(t, err)
		assert.Equal(t, "7", id)
	})

	t.Run("failure keeps messages", func(t *testing.T) {
		_, err := ParseCreationResponse(url.Values{
			"message_error": {"Date is missing"},
			"u":             {"competition_add"},
		})
		require.ErrorIs(t, err, errz.ErrCreation)

		var creationErr *errz.CreationError
		require.ErrorAs(t, err, &creationErr)
		assert.Equal(t, url.Values{"message_error": {"Date is missing"}}, creationErr.Messages)
	})

	t.Run("success without id", func(t *testing.T) {
		_, err := ParseCreationResponse(url.Values{"message_ok": {"Saved"}})
		require.ErrorIs(t, err, errz.ErrCreation)
	})
}

func TestMaker_CreateMultiRoundEvent(t *testing.T) {
	t.Parallel()

	site := testutil.NewRecordingSite(url.Values{"message_ok": {"1"}, "ID": {"900"}})
	maker := newTestMaker(site)

	date := time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)
	id, err := maker.CreateMultiRoundEvent(t.Context(), "2455221", date, "Runde 9", "Main")
	require.NoError(t, err)
	assert.Equal(t, "900", id)

	assert.Equal(t, []string{
		"navigate u=competition_add&competitiontype=&parentid=2455221&record_type=4",
		"wait",
		"set i01=2023-05-02",
		"set i02=00:00",
		"set i03=Runde 9",
		"set i04=Main",
		"combo-name copy_players_from=",
		"submit",
		"wait",
		"query",
	}, site.Calls())
}

func TestMaker_CreateRound(t *testing.T) {
	t.Parallel()

	site := testutil.NewRecordingSite(url.Values{"message_ok": {"1"}, "ID": {"901"}})
	maker := newTestMaker(site)

	date := time.Date(2023, time.May, 2, 17, 0, 0, 0, time.UTC)
	id, err := maker.CreateRound(t.Context(), "900", date, "Fellesstart", "")
	require.NoError(t, err)
	assert.Equal(t, "901", id)
	assert.Equal(t, []string{
		"navigate u=competition_add&competitiontype=&parentid=900&record_type=1",
	}, site.CallsWithPrefix("navigate"))
	assert.Contains(t, site.Calls(), "set i02=17:00")
}

func TestMaker_CreateFailures(t *testing.T) {
	t.Parallel()

	t.Run("site reports an error", func(t *testing.T) {
		site := testutil.NewRecordingSite(url.Values{"message_error": {"Title too long"}})
		_, err := newTestMaker(site).CreateRound(t.Context(), "900", time.Now(), "x", "")
		require.ErrorIs(t, err, errz.ErrCreation)
		assert.Contains(t, err.Error(), "Title too long")
	})

	t.Run("form step fails", func(t *testing.T) {
		site := testutil.NewRecordingSite(url.Values{"message_ok": {"1"}, "ID": {"1"}})
		stepErr := errors.New("element i03 not found")
		site.FailOn["set i03"] = stepErr

		_, err := newTestMaker(site).CreateRound(t.Context(), "900", time.Now(), "x", "")
		require.ErrorIs(t, err, stepErr)
		assert.Empty(t, site.CallsWithPrefix("submit"))
		assert.Empty(t, site.CallsWithPrefix("query"))
	})

	t.Run("reading the location fails", func(t *testing.T) {
		site := testutil.NewRecordingSite()
		queryErr := errors.New("target closed")
		site.FailOn["query"] = queryErr

		_, err := newTestMaker(site).CreateMultiRoundEvent(t.Context(), "1", time.Now(), "x", "")
		require.ErrorIs(t, err, queryErr)
	})
}
