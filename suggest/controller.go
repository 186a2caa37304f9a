// Package suggest drives the interactive search box: it debounces keystrokes,
// runs suggestions against the search client, and guarantees that displayed
// results always correspond to the latest accepted input.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
	"github.com/goliatone/go-storefront/search"
	"github.com/google/uuid"
)

// State is the dropdown lifecycle.
type State int

const (
	// StateIdle means no query is active and nothing is displayed.
	StateIdle State = iota
	// StatePending means input was accepted and a search is debouncing or in
	// flight.
	StatePending
	// StateOpen means results for the latest accepted input are displayed.
	// Open with zero hits is the empty-result rendering, including after a
	// swallowed search failure.
	StateOpen
	// StateClosed means the user dismissed the dropdown; the query text may
	// still be present.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Defaults mirror the production search box tuning.
const (
	DefaultDebounce       = 300 * time.Millisecond
	DefaultMinQueryLength = 2
	DefaultLimit          = 8
)

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	State     State
	Query     string
	Hits      []search.Hit
	TotalHits int64
}

// Timer is the controller's debounce handle.
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fn after d. Production uses time.AfterFunc; tests
// inject a factory that fires synchronously.
type TimerFactory func(d time.Duration, fn func()) Timer

type stdTimer struct{ t *time.Timer }

func (s stdTimer) Stop() bool { return s.t.Stop() }

func stdTimerFactory(d time.Duration, fn func()) Timer {
	return stdTimer{t: time.AfterFunc(d, fn)}
}

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithMinQueryLength overrides the minimum accepted input length.
func WithMinQueryLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.minQuery = n
		}
	}
}

// WithLimit overrides the number of suggestions requested per search.
func WithLimit(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithTimerFactory overrides debounce scheduling.
func WithTimerFactory(factory TimerFactory) Option {
	return func(c *Controller) {
		if factory != nil {
			c.newTimer = factory
		}
	}
}

// WithLogger injects the suggest logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNotify registers a callback invoked after every state transition with
// the fresh snapshot. The callback runs outside the controller lock.
func WithNotify(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.notify = fn
	}
}

// Controller owns the search box state machine. All methods are safe for
// concurrent use; completions for superseded inputs are discarded by
// generation tag, so the display can never regress to an older query's
// results.
type Controller struct {
	client   search.Client
	locale   string
	debounce time.Duration
	minQuery int
	limit    int
	newTimer TimerFactory
	logger   interfaces.Logger
	notify   func(Snapshot)

	mu         sync.Mutex
	state      State
	query      string
	hits       []search.Hit
	totalHits  int64
	timer      Timer
	generation uuid.UUID
	cancel     context.CancelFunc
}

// NewController builds a controller bound to one locale.
func NewController(client search.Client, locale string, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		locale:   locale,
		debounce: DefaultDebounce,
		minQuery: DefaultMinQueryLength,
		limit:    DefaultLimit,
		newTimer: stdTimerFactory,
		logger:   logging.NoOp(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input feeds the current text of the search box. Short input clears any
// pending or displayed results immediately; accepted input restarts the
// debounce window, so a fast sequence of keystrokes produces one search for
// the final text only.
func (c *Controller) Input(text string) {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	wasOpen := c.state == StateOpen
	c.stopPendingLocked()
	c.query = trimmed

	if len([]rune(trimmed)) < c.minQuery {
		c.hits = nil
		c.totalHits = 0
		// A visible dropdown closes; otherwise the box goes back to rest.
		if wasOpen {
			c.state = StateClosed
		} else {
			c.state = StateIdle
		}
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snapshot)
		return
	}

	c.state = StatePending
	generation := uuid.New()
	c.generation = generation
	c.timer = c.newTimer(c.debounce, func() {
		c.fire(generation, trimmed)
	})
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snapshot)
}

// Dismiss closes the dropdown without clearing the query text. Any pending
// search is abandoned.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	c.stopPendingLocked()
	c.hits = nil
	c.totalHits = 0
	c.state = StateClosed
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snapshot)
}

// Snapshot returns the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// fire runs when the debounce window elapses. The generation check on both
// sides of the search discards work for superseded input.
func (c *Controller) fire(generation uuid.UUID, text string) {
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	result, err := c.client.Search(ctx, search.Request{
		Query:  text,
		Locale: c.locale,
		Limit:  c.limit,
	})
	cancel()

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return
	}

	if err != nil {
		// Suggestions are best effort; a failed search renders as no results.
		c.logger.Warn("suggest.search.failed", "query", text, "error", err)
		c.hits = nil
		c.totalHits = 0
	} else {
		c.hits = result.Hits
		c.totalHits = result.TotalHits
	}
	c.state = StateOpen
	snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snapshot)
}

// stopPendingLocked invalidates the current generation, stops the debounce
// timer, and cancels any in-flight search.
func (c *Controller) stopPendingLocked() {
	c.generation = uuid.New()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	hits := make([]search.Hit, len(c.hits))
	copy(hits, c.hits)
	return Snapshot{
		State:     c.state,
		Query:     c.query,
		Hits:      hits,
		TotalHits: c.totalHits,
	}
}

func (c *Controller) emit(snapshot Snapshot) {
	if c.notify != nil {
		c.notify(snapshot)
	}
}
