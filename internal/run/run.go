// Package run creates one week of competitions on the site and keeps track of the progress.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/credentials"
	"github.com/atlanticdynamic/autodgm/internal/rounds"
	"github.com/atlanticdynamic/autodgm/internal/run/finitestate"
	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
)

var (
	ErrAlreadyExecuted = errors.New("run already executed")
	ErrNilPlan         = errors.New("run needs an event plan")
)

// Result holds the ids created so far. Nothing is rolled back on failure, so a partial
// result tells the operator what exists on the site.
type Result struct {
	EventID  string
	RoundIDs []string
}

// Run creates the multi-round event of a plan, then each of its rounds.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time

	plan     *rounds.EventPlan
	site     settings.Site
	setter   *settings.Setter
	maker    *rounds.Maker
	creds    credentials.Credentials
	prompter credentials.Prompter
	skipAuth bool

	fsm          finitestate.Machine
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	result Result
}

// Option configures a Run
type Option func(*Run)

// WithCredentials sets the login used by the run
func WithCredentials(creds credentials.Credentials) Option {
	return func(r *Run) {
		r.creds = creds
	}
}

// WithPrompter sets the prompter used for a manual login
func WithPrompter(p credentials.Prompter) Option {
	return func(r *Run) {
		r.prompter = p
	}
}

// WithoutLogin skips the login step, for sites where the session already exists
func WithoutLogin() Option {
	return func(r *Run) {
		r.skipAuth = true
	}
}

// New prepares a run of plan on site. Every round's settings are composed up front so an
// invalid plan fails before anything is created.
func New(plan *rounds.EventPlan, site settings.Site, handler slog.Handler, opts ...Option) (*Run, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	if handler == nil {
		handler = slog.Default().Handler()
	}

	for _, rp := range plan.Rounds {
		if _, err := rp.Settings(""); err != nil {
			return nil, fmt.Errorf("round %d %q: %w", rp.Index, rp.Title, err)
		}
	}

	runID := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", runID, err)
	}

	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With("runID", runID, "week", plan.Week)

	r := &Run{
		ID:           runID,
		CreatedAt:    time.Now(),
		plan:         plan,
		site:         site,
		fsm:          sm,
		logger:       logger,
		logCollector: logCollector,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.setter = settings.NewSetter(site, settings.WithLogger(logger.With("component", "setter")))
	r.maker = rounds.NewMaker(r.setter, rounds.WithMakerLogger(logger.With("component", "maker")))

	r.logger.Info("Run created", "title", plan.Title, "date", plan.Date.Format(settings.DateLayout), "rounds", len(plan.Rounds))
	return r, nil
}

// GetState returns the current state of the run
func (r *Run) GetState() string {
	return r.fsm.GetState()
}

// Result returns the ids created so far
func (r *Run) Result() Result {
	return Result{
		EventID:  r.result.EventID,
		RoundIDs: append([]string(nil), r.result.RoundIDs...),
	}
}

// Execute logs in, creates and configures the event, then creates and configures each
// round. The first failure stops the run in the failed state.
func (r *Run) Execute(ctx context.Context) (Result, error) {
	if r.GetState() != finitestate.StateCreated {
		return r.Result(), fmt.Errorf("%w: state is %s", ErrAlreadyExecuted, r.GetState())
	}

	if err := r.execute(ctx); err != nil {
		return r.Result(), r.fail(err)
	}

	if err := r.transition(finitestate.StateCompleted); err != nil {
		return r.Result(), err
	}
	r.logger.Info("Run completed",
		"eventID", r.result.EventID,
		"roundIDs", r.result.RoundIDs,
		"duration", time.Since(r.CreatedAt),
	)
	return r.Result(), nil
}

func (r *Run) execute(ctx context.Context) error {
	if err := r.transition(finitestate.StateLoggingIn); err != nil {
		return err
	}
	if r.skipAuth {
		r.logger.Info("Login skipped")
	} else if err := Login(ctx, r.site, r.creds, r.prompter, r.logger); err != nil {
		return err
	}

	if err := r.transition(finitestate.StateCreatingEvent); err != nil {
		return err
	}
	eventID, err := r.maker.Create(ctx, r.plan.Request())
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	r.result.EventID = eventID

	if err := r.transition(finitestate.StateConfiguringEvent); err != nil {
		return err
	}
	if err := r.setter.ApplyAll(ctx, r.plan.WeeklySettings(eventID).Bundles()...); err != nil {
		return fmt.Errorf("configure event %s: %w", eventID, err)
	}

	for _, rp := range r.plan.Rounds {
		if err := r.executeRound(ctx, eventID, rp); err != nil {
			return fmt.Errorf("round %d %q: %w", rp.Index, rp.Title, err)
		}
	}
	return nil
}

func (r *Run) executeRound(ctx context.Context, eventID string, rp rounds.RoundPlan) error {
	if err := r.transition(finitestate.StateCreatingRounds); err != nil {
		return err
	}
	roundID, err := r.maker.Create(ctx, rp.Request(eventID))
	if err != nil {
		return err
	}
	r.result.RoundIDs = append(r.result.RoundIDs, roundID)

	if err := r.transition(finitestate.StateConfiguringRounds); err != nil {
		return err
	}
	rs, err := rp.Settings(roundID)
	if err != nil {
		return err
	}
	r.logger.Debug("Round settings composed", "roundID", roundID, "bundles", len(rs.Bundles()))
	return r.setter.ApplyAll(ctx, rs.Bundles()...)
}

func (r *Run) transition(state string) error {
	if err := r.fsm.Transition(state); err != nil {
		r.logger.Error("Failed to transition run state", "state", state, "error", err)
		return err
	}
	r.logger.Debug("Run state changed", "state", state)
	return nil
}

func (r *Run) fail(cause error) error {
	r.logger.Error("Run failed",
		"state", r.GetState(),
		"eventID", r.result.EventID,
		"roundIDs", r.result.RoundIDs,
		"error", cause,
	)
	if err := r.fsm.Transition(finitestate.StateFailed); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// PlaybackLogs replays every log record of the run on handler
func (r *Run) PlaybackLogs(handler slog.Handler) error {
	return r.logCollector.PlayLogs(handler)
}

// LogCount returns the number of log records kept for the run
func (r *Run) LogCount() int {
	return len(r.logCollector.GetLogs())
}
