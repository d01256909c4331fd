package paging

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// State is the lifecycle of a paging session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchFunc loads the page starting at cursor.
type FetchFunc[T any] func(ctx context.Context, cursor int) result.Result[Page[T]]

// Snapshot is a point-in-time copy of a session.
type Snapshot[T any] struct {
	Items   []T
	State   State
	HasMore bool
	Err     *result.Error
}

// Option configures a Pager.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

// WithLogger attaches a logger used for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithName labels the session in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Pager accumulates pages from fetch into a single ordered sequence.
// At most one fetch is in flight per Pager. Items are appended as received;
// overlapping upstream pages produce duplicates.
type Pager[T any] struct {
	fetch FetchFunc[T]
	opts  options

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	cursor     int
	hasMore    bool
	items      []T
	err        *result.Error
	generation uint64
	closed     bool
	// abort cancels the fetch in flight, if any.
	abort context.CancelFunc
}

// New creates an idle session positioned at FirstCursor.
func New[T any](fetch FetchFunc[T], opts ...Option) *Pager[T] {
	o := options{name: "pager"}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pager[T]{
		fetch:   fetch,
		opts:    o,
		ctx:     ctx,
		cancel:  cancel,
		state:   StateIdle,
		cursor:  FirstCursor,
		hasMore: true,
		items:   []T{},
	}
}

// LoadMore fetches the next page and blocks until it has been applied.
// It reports whether a fetch was issued: calls made while another fetch is in
// flight, after exhaustion, after a failure, or after Close return false at once.
func (p *Pager[T]) LoadMore(ctx context.Context) bool {
	p.mu.Lock()
	if !p.canLoadLocked() {
		p.mu.Unlock()
		return false
	}
	p.state = StateLoading
	cursor := p.cursor
	gen := p.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	p.abort = cancel
	p.mu.Unlock()

	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	res := p.fetch(fetchCtx, cursor)
	p.apply(gen, cursor, res)
	return true
}

func (p *Pager[T]) canLoadLocked() bool {
	if p.closed || p.fetch == nil {
		return false
	}
	switch p.state {
	case StateIdle:
		return true
	case StateLoaded:
		return p.hasMore
	default:
		return false
	}
}

func (p *Pager[T]) apply(gen uint64, cursor int, res result.Result[Page[T]]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.abort = nil
	if p.closed {
		return
	}
	if gen != p.generation {
		// The session was restarted mid-fetch and held in Loading until now.
		p.state = StateIdle
		logging.Debug(p.opts.logger, "discarding stale page", logging.FieldPager, p.opts.name, logging.FieldCursor, cursor)
		return
	}

	if err := res.Err(); err != nil {
		p.state = StateFailed
		p.hasMore = false
		p.err = err
		logging.Warn(p.opts.logger, "page load failed",
			logging.FieldPager, p.opts.name,
			logging.FieldCursor, cursor,
			logging.FieldErrorKind, string(err.Kind),
		)
		return
	}

	page := res.Value()
	p.items = append(p.items, page.Items...)
	p.err = nil
	p.state = StateLoaded
	if page.NextCursor != nil {
		p.cursor = *page.NextCursor
		p.hasMore = true
	} else {
		p.hasMore = false
	}
	logging.Debug(p.opts.logger, "page loaded",
		logging.FieldPager, p.opts.name,
		logging.FieldCursor, cursor,
		logging.FieldCount, len(page.Items),
		"has_more", p.hasMore,
	)
}

// Restart drops accumulated items and returns the session to FirstCursor.
// A fetch already in flight is canceled and its page discarded; the session
// stays Loading until that fetch returns, so LoadMore cannot overlap it.
func (p *Pager[T]) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.generation++
	if p.state == StateLoading {
		if p.abort != nil {
			p.abort()
		}
	} else {
		p.state = StateIdle
	}
	p.cursor = FirstCursor
	p.hasMore = true
	p.items = []T{}
	p.err = nil
}

// Close abandons the session. The in-flight fetch context is canceled and any
// late result is dropped.
func (p *Pager[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.hasMore = false
	p.mu.Unlock()
	p.cancel()
}

// Snapshot returns a copy of the current session state.
func (p *Pager[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot[T]{
		Items:   slices.Clone(p.items),
		State:   p.state,
		HasMore: p.hasMore && !p.closed,
		Err:     p.err,
	}
}

// Items returns a copy of the accumulated items.
func (p *Pager[T]) Items() []T {
	return p.Snapshot().Items
}

// HasMore reports whether LoadMore could still fetch a page.
func (p *Pager[T]) HasMore() bool {
	return p.Snapshot().HasMore
}
