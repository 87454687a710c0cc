package rounds

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// RecordType is the kind of competition created on the site.
type RecordType int

const (
	// RecordTypeRound is a single round.
	RecordTypeRound RecordType = 1
	// RecordTypeMultiRoundEvent groups several rounds.
	RecordTypeMultiRoundEvent RecordType = 4
)

// String returns the name of the record type
func (r RecordType) String() string {
	switch r {
	case RecordTypeRound:
		return "round"
	case RecordTypeMultiRoundEvent:
		return "multi-round event"
	default:
		return fmt.Sprintf("record type %d", int(r))
	}
}

// Fields of the competition creation form.
const (
	FieldCreateDate    = "i01"
	FieldCreateTime    = "i02"
	FieldCreateTitle   = "i03"
	FieldCreateComment = "i04"
	FieldCopyPlayers   = "copy_players_from"

	// ParamSuccess is present in the redirect after a successful creation.
	ParamSuccess = "message_ok"
	// ParamID holds the id of the created competition.
	ParamID = "ID"
)

// CreationRequest describes a competition to create under a parent competition.
type CreationRequest struct {
	ParentID   string
	RecordType RecordType
	Date       time.Time
	Title      string
	Comment    string
}

// Path returns the query path of the creation form.
func (r CreationRequest) Path() string {
	return fmt.Sprintf(
		"u=competition_add&competitiontype=&parentid=%s&record_type=%d",
		r.ParentID,
		int(r.RecordType),
	)
}

// Settings returns the form steps of the request, ending with the submission.
func (r CreationRequest) Settings() []settings.AtomicSetting {
	return []settings.AtomicSetting{
		settings.SetDate(FieldCreateDate, r.Date),
		settings.SetTime(FieldCreateTime, r.Date),
		settings.SetText(FieldCreateTitle, r.Title),
		settings.SetText(FieldCreateComment, r.Comment),
		settings.SelectComboByName(FieldCopyPlayers, ""),
		settings.Submit(),
	}
}

// ParseCreationResponse returns the id of the created competition from the query
// parameters the site redirected to.
func ParseCreationResponse(params url.Values) (string, error) {
	if _, ok := params[ParamSuccess]; !ok {
		return "", errz.NewCreationError(params)
	}
	id := params.Get(ParamID)
	if id == "" {
		return "", fmt.Errorf("%w: response has no %s parameter", errz.ErrCreation, ParamID)
	}
	return id, nil
}

// Maker creates competitions through the creation form. Calls must be sequential, a round
// is created under the id returned by a previous call.
type Maker struct {
	setter *settings.Setter
	logger *slog.Logger
}

// MakerOption configures a Maker
type MakerOption func(*Maker)

// WithMakerLogger sets the logger of the Maker
func WithMakerLogger(logger *slog.Logger) MakerOption {
	return func(m *Maker) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMaker creates a Maker filling forms through the setter.
func NewMaker(setter *settings.Setter, opts ...MakerOption) *Maker {
	m := &Maker{
		setter: setter,
		logger: slog.Default().With("component", "maker"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateMultiRoundEvent creates a multi-round event under parentID and returns its id.
func (m *Maker) CreateMultiRoundEvent(
	ctx context.Context,
	parentID string,
	date time.Time,
	title, comment string,
) (string, error) {
	return m.Create(ctx, CreationRequest{
		ParentID:   parentID,
		RecordType: RecordTypeMultiRoundEvent,
		Date:       date,
		Title:      title,
		Comment:    comment,
	})
}

// CreateRound creates a single round under parentID and returns its id.
func (m *Maker) CreateRound(
	ctx context.Context,
	parentID string,
	date time.Time,
	title, comment string,
) (string, error) {
	return m.Create(ctx, CreationRequest{
		ParentID:   parentID,
		RecordType: RecordTypeRound,
		Date:       date,
		Title:      title,
		Comment:    comment,
	})
}

// Create fills and submits the creation form of the request.
func (m *Maker) Create(ctx context.Context, req CreationRequest) (string, error) {
	logger := m.logger.With("type", req.RecordType.String(), "parentID", req.ParentID, "title", req.Title)
	logger.Info("Creating competition", "date", req.Date.Format("2006-01-02 15:04"))

	if err := m.setter.Set(ctx, req.Path(), req.Settings()...); err != nil {
		return "", fmt.Errorf("create %s %q: %w", req.RecordType, req.Title, err)
	}

	site := m.setter.Site()
	if err := site.WaitReady(ctx); err != nil {
		return "", fmt.Errorf("create %s %q: %w", req.RecordType, req.Title, err)
	}
	params, err := site.CurrentQueryParameters(ctx)
	if err != nil {
		return "", fmt.Errorf("create %s %q: read response: %w", req.RecordType, req.Title, err)
	}

	id, err := ParseCreationResponse(params)
	if err != nil {
		logger.Error("Competition not created", "error", err)
		return "", err
	}

	logger.Info("Competition created", "id", id)
	return id, nil
}
