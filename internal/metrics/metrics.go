package metrics

import (
	"sync"
	"time"
)

type upstreamKey struct {
	provider string
	endpoint string
}

type upstreamStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
	lastErrorKind   string
}

// Recorder captures in-memory stats about upstream calls and forwards them to
// OpenTelemetry when instruments are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[upstreamKey]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[upstreamKey]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts one request to provider's endpoint. errorKind is
// empty for successful calls.
func (r *Recorder) RecordUpstreamCall(provider, endpoint string, duration time.Duration, errorKind string) {
	if r == nil {
		return
	}

	r.update(provider, endpoint, func(stats *upstreamStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if errorKind != "" {
			stats.errors++
			stats.lastErrorKind = errorKind
		}
	})
	if r.otel != nil {
		r.otel.recordUpstreamCall(provider, endpoint, duration, errorKind)
	}
}

// RecordRateLimit tracks an upstream 429 and the Retry-After it carried.
func (r *Recorder) RecordRateLimit(provider, endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(provider, endpoint, func(stats *upstreamStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, endpoint, retryAfter)
	}
}

// Snapshot is a copy of the stats for one provider endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	LastErrorKind   string
}

func (r *Recorder) Snapshot(provider, endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[upstreamKey{provider: provider, endpoint: endpoint}]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		LastErrorKind:   stats.lastErrorKind,
	}
}

// RecordHTTPRequest tracks gateway requests.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) update(provider, endpoint string, fn func(*upstreamStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := upstreamKey{provider: provider, endpoint: endpoint}
	stats, ok := r.stats[key]
	if !ok {
		stats = &upstreamStats{}
		r.stats[key] = stats
	}
	fn(stats)
}
