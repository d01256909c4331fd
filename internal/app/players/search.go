package players

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/nba-data-client/internal/debounce"
	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Update is what a search reports after a query fires or more results load.
type Update struct {
	Query    string
	Snapshot paging.Snapshot[players.Player]
	Err      *result.Error
}

// SearchConfig configures a Search. Zero values use the real clock and debounce.DefaultDelay.
type SearchConfig struct {
	Clock    clockwork.Clock
	Delay    time.Duration
	OnUpdate func(Update)
	Logger   *slog.Logger
}

// Search turns a stream of query edits into player searches. Edits are
// debounced, a query equal to the last one fired is skipped, and firing a new
// query abandons the previous paging session.
type Search struct {
	svc       *Service
	debouncer *debounce.Debouncer
	onUpdate  func(Update)
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	fired  bool
	last   string
	pager  *paging.Pager[players.Player]
	closed bool
}

func NewSearch(svc *Service, cfg SearchConfig) *Search {
	ctx, cancel := context.WithCancel(context.Background())
	onUpdate := cfg.OnUpdate
	if onUpdate == nil {
		onUpdate = func(Update) {}
	}
	return &Search{
		svc:       svc,
		debouncer: debounce.New(cfg.Clock, cfg.Delay),
		onUpdate:  onUpdate,
		logger:    cfg.Logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetQuery records an edit. Only the last edit in a quiet period fires.
func (s *Search) SetQuery(query string) {
	s.debouncer.Trigger(func() { s.fire(query) })
}

// Flush fires a pending edit immediately.
func (s *Search) Flush() {
	s.debouncer.Flush()
}

// LoadMore loads the next page of the current session and reports it.
func (s *Search) LoadMore(ctx context.Context) bool {
	s.mu.Lock()
	pager, query := s.pager, s.last
	s.mu.Unlock()
	if pager == nil {
		return false
	}
	if !pager.LoadMore(ctx) {
		return false
	}
	s.report(query, pager)
	return true
}

// Current returns the last fired query and its session state.
func (s *Search) Current() (string, paging.Snapshot[players.Player], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pager == nil {
		return s.last, paging.Snapshot[players.Player]{}, false
	}
	return s.last, s.pager.Snapshot(), true
}

// Close stops debouncing and abandons the current session.
func (s *Search) Close() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.closed = true
	pager := s.pager
	s.pager = nil
	s.mu.Unlock()
	if pager != nil {
		pager.Close()
	}
	s.cancel()
}

func (s *Search) fire(raw string) {
	query := strings.TrimSpace(raw)

	s.mu.Lock()
	if s.closed || (s.fired && query == s.last) {
		s.mu.Unlock()
		return
	}
	s.fired = true
	s.last = query
	prev := s.pager
	s.pager = nil
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	logging.Debug(s.logger, "player search fired", logging.FieldQuery, query)

	res := s.svc.SearchPlayers(query)
	if !res.Ok() {
		s.onUpdate(Update{Query: query, Err: res.Err()})
		return
	}
	pager := res.Value()

	s.mu.Lock()
	if s.closed || s.last != query {
		s.mu.Unlock()
		pager.Close()
		return
	}
	s.pager = pager
	s.mu.Unlock()

	pager.LoadMore(s.ctx)
	s.report(query, pager)
}

// report publishes pager's state unless a newer query has replaced it.
func (s *Search) report(query string, pager *paging.Pager[players.Player]) {
	s.mu.Lock()
	current := s.pager == pager
	s.mu.Unlock()
	if !current {
		return
	}
	snap := pager.Snapshot()
	s.onUpdate(Update{Query: query, Snapshot: snap, Err: snap.Err})
}
