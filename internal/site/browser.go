// Package site drives the competition site in a Chrome browser through chromedp.
package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

var ErrElementNotFound = errors.New("element not found")

// Browser implements settings.Site on a Chrome tab.
type Browser struct {
	baseURL     *url.URL
	headless    bool
	settleDelay time.Duration
	execPath    string
	logger      *slog.Logger

	tab         context.Context
	cancelAlloc context.CancelFunc
	cancelTab   context.CancelFunc
}

var _ settings.Site = (*Browser)(nil)

// Option configures a Browser
type Option func(*Browser)

// WithHeadless runs Chrome without a window
func WithHeadless(headless bool) Option {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithSettleDelay sets how long WaitReady waits before checking the page
func WithSettleDelay(d time.Duration) Option {
	return func(b *Browser) {
		if d >= 0 {
			b.settleDelay = d
		}
	}
}

// WithExecPath sets the Chrome binary
func WithExecPath(path string) Option {
	return func(b *Browser) {
		b.execPath = path
	}
}

// WithLogHandler sets the log handler of the Browser
func WithLogHandler(handler slog.Handler) Option {
	return func(b *Browser) {
		if handler != nil {
			b.logger = slog.New(handler).With("component", "browser")
		}
	}
}

// New creates a Browser for baseURL. Chrome is started by Start.
func New(baseURL string, opts ...Option) (*Browser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: not absolute", baseURL)
	}

	b := &Browser{
		baseURL:     u,
		settleDelay: time.Second,
		logger:      slog.Default().With("component", "browser"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Start launches Chrome and opens a tab, the browser lives until Close or until parent is
// done.
func (b *Browser) Start(parent context.Context) error {
	if b.tab != nil {
		return errors.New("browser already started")
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Flag("headless", b.headless))
	if b.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(b.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	tab, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			b.logger.Debug(fmt.Sprintf(format, args...))
		}),
		chromedp.WithErrorf(func(format string, args ...any) {
			b.logger.Warn(fmt.Sprintf(format, args...))
		}),
	)

	// starts the browser
	if err := chromedp.Run(tab); err != nil {
		cancelTab()
		cancelAlloc()
		return fmt.Errorf("failed to start browser: %w", err)
	}

	b.tab, b.cancelTab, b.cancelAlloc = tab, cancelTab, cancelAlloc
	b.logger.Info("Browser started", "headless", b.headless, "baseURL", b.baseURL.String())
	return nil
}

// Close shuts the tab and the browser down
func (b *Browser) Close() error {
	if b.tab == nil {
		return nil
	}
	b.cancelTab()
	b.cancelAlloc()
	b.tab = nil
	b.logger.Debug("Browser closed")
	return nil
}

// URL returns the absolute address of a page path
func (b *Browser) URL(path string) string {
	u := *b.baseURL
	if path == "" {
		return u.String()
	}
	u.RawQuery = strings.TrimPrefix(path, "?")
	return u.String()
}

// run executes actions on the tab, aborting them when ctx is done
func (b *Browser) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.tab == nil {
		return errors.New("browser not started")
	}

	runCtx, cancel := context.WithCancel(b.tab)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (b *Browser) evaluate(ctx context.Context, script string) error {
	b.logger.Debug("Evaluating script", "script", script)
	return b.run(ctx, chromedp.Evaluate(script, nil))
}

// Navigate opens the page at path
func (b *Browser) Navigate(ctx context.Context, path string) error {
	target := b.URL(path)
	b.logger.Debug("Navigating", "url", target)
	return b.run(ctx, chromedp.Navigate(target))
}

// GetFieldByID returns a handle on the element with the id
func (b *Browser) GetFieldByID(ctx context.Context, id string) (settings.Field, error) {
	var nodes []*cdp.Node
	if err := b.run(ctx, chromedp.Nodes(id, &nodes, chromedp.ByID, chromedp.AtLeast(0))); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	return &field{browser: b, id: id}, nil
}

// Click clicks the element with the id
func (b *Browser) Click(ctx context.Context, id string) error {
	b.logger.Debug("Clicking", "id", id)
	return b.run(ctx, chromedp.Click(id, chromedp.ByID, chromedp.NodeVisible))
}

// SetFieldValue sets the value of the element with the id
func (b *Browser) SetFieldValue(ctx context.Context, id, text string) error {
	return b.evaluate(ctx, setValueByIDScript(id, text))
}

// SetFirstValueByAttribute sets the value of the first element carrying the attribute value
func (b *Browser) SetFirstValueByAttribute(
	ctx context.Context,
	attributeName, attributeValue, text string,
) error {
	return b.evaluate(ctx, setFirstValueByAttributeScript(attributeName, attributeValue, text))
}

// SelectComboValueByName sets the first select element with the name
func (b *Browser) SelectComboValueByName(ctx context.Context, name, value string) error {
	return b.evaluate(ctx, setComboByNameScript(name, value))
}

// SelectComboValueByID sets the select element with the id
func (b *Browser) SelectComboValueByID(ctx context.Context, id, value string) error {
	return b.evaluate(ctx, setValueByIDScript(id, value))
}

// Submit clicks the first submit control of the page
func (b *Browser) Submit(ctx context.Context) error {
	b.logger.Debug("Submitting form")
	return b.evaluate(ctx, submitScript)
}

// Refresh reloads the page
func (b *Browser) Refresh(ctx context.Context) error {
	b.logger.Debug("Reloading page")
	return b.run(ctx, chromedp.Reload())
}

// RunScript calls a named page script with JSON-encoded arguments
func (b *Browser) RunScript(ctx context.Context, script settings.Script, args ...any) error {
	expr, err := namedScript(script, args...)
	if err != nil {
		return err
	}
	b.logger.Debug("Running script", "script", script.Name(), "args", args)
	return b.run(ctx, chromedp.Evaluate(expr, nil))
}

// WaitReady waits the settle delay, then for the page body
func (b *Browser) WaitReady(ctx context.Context) error {
	if b.settleDelay > 0 {
		timer := time.NewTimer(b.settleDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return b.run(ctx, chromedp.WaitReady("body", chromedp.ByQuery))
}

// CurrentLocation returns the address of the current page
func (b *Browser) CurrentLocation(ctx context.Context) (*url.URL, error) {
	var location string
	if err := b.run(ctx, chromedp.Location(&location)); err != nil {
		return nil, err
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid page location %q: %w", location, err)
	}
	return u, nil
}

// CurrentQueryParameters returns the query of the current page
func (b *Browser) CurrentQueryParameters(ctx context.Context) (url.Values, error) {
	u, err := b.CurrentLocation(ctx)
	if err != nil {
		return nil, err
	}
	return u.Query(), nil
}

type field struct {
	browser *Browser
	id      string
}

func (f *field) ID() string {
	return f.id
}

func (f *field) Click(ctx context.Context) error {
	return f.browser.Click(ctx, f.id)
}

func (f *field) SelectByValue(ctx context.Context, value string) error {
	return f.browser.evaluate(ctx, selectByValueScript(f.id, value))
}
