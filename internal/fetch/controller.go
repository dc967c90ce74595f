package fetch

import (
	"context"
	"log"
	"time"

	"ghprofile/internal/github"

	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher retrieves a profile from a locator. *github.Client implements it.
type Fetcher interface {
	FetchUser(ctx context.Context, locator string) (*github.UserProfile, error)
}

// ResultMsg is produced by a fetch command when its request resolves.
// Generation identifies the request; the controller drops it when stale.
type ResultMsg struct {
	Generation uint64
	Locator    string
	Action     Action
}

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout bounds each request. Zero (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithContext sets the parent context for requests (carries trace spans).
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// Controller holds the locator and request state for one view session.
// It is not safe for concurrent use; call it only from the Bubble Tea
// Update loop. Fetches run as tea.Cmds and report back via ResultMsg.
type Controller struct {
	fetcher    Fetcher
	ctx        context.Context
	timeout    time.Duration
	locator    string
	generation uint64
	state      State
	closed     bool
}

// New creates a controller that will fetch initialLocator on Init.
func New(fetcher Fetcher, initialLocator string, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		ctx:     context.Background(),
		locator: initialLocator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current request state.
func (c *Controller) State() State {
	return c.state
}

// Locator returns the current locator.
func (c *Controller) Locator() string {
	return c.locator
}

// Generation returns the id of the most recent request.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

// Init issues the initial-mount fetch for the starting locator.
func (c *Controller) Init() tea.Cmd {
	if c.closed {
		return nil
	}
	return c.start()
}

// SetLocator replaces the locator and fetches it. Setting the current
// locator again is a no-op and returns nil.
func (c *Controller) SetLocator(locator string) tea.Cmd {
	if c.closed || locator == c.locator {
		return nil
	}
	c.locator = locator
	return c.start()
}

// Refresh refetches the current locator, superseding any in-flight request.
func (c *Controller) Refresh() tea.Cmd {
	if c.closed {
		return nil
	}
	return c.start()
}

// Handle applies msg if it belongs to the latest request and reports
// whether the state changed. Results of superseded requests, and any result
// arriving after Close, are discarded.
func (c *Controller) Handle(msg ResultMsg) bool {
	if c.closed {
		log.Printf("fetch: controller closed, discarding result for %s (generation %d)",
			msg.Locator, msg.Generation)
		return false
	}
	if msg.Generation != c.generation {
		log.Printf("fetch: dropping stale result for %s (generation %d, current %d)",
			msg.Locator, msg.Generation, c.generation)
		return false
	}
	c.state = Reduce(c.state, msg.Action)
	return true
}

// Close tears the controller down. In-flight requests are not aborted;
// their results are ignored.
func (c *Controller) Close() {
	c.closed = true
	c.generation++
}

// start bumps the generation, enters Loading, and returns the fetch command.
// The command captures its inputs by value so it never touches the controller.
func (c *Controller) start() tea.Cmd {
	c.generation++
	c.state = Reduce(c.state, Init{})

	gen := c.generation
	locator := c.locator
	fetcher := c.fetcher
	parent := c.ctx
	timeout := c.timeout

	return func() tea.Msg {
		ctx := parent
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(parent, timeout)
			defer cancel()
		}
		profile, err := fetcher.FetchUser(ctx, locator)
		if err != nil {
			return ResultMsg{Generation: gen, Locator: locator, Action: Failure{Err: err}}
		}
		return ResultMsg{Generation: gen, Locator: locator, Action: Success{Profile: profile}}
	}
}
