package providers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/metrics"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

// instrumentedProvider times every upstream call, records it and logs the outcome.
// It never retries.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner with call metrics and debug logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) Name() string {
	if p.inner == nil {
		return "unavailable"
	}
	return p.inner.Name()
}

func (p *instrumentedProvider) Teams(ctx context.Context) (balldontlie.TeamsResponse, error) {
	if p.inner == nil {
		return balldontlie.TeamsResponse{}, ErrProviderUnavailable
	}
	start := p.now()
	resp, err := p.inner.Teams(ctx)
	p.observe(ctx, EndpointTeams, start, len(resp.Data), err)
	return resp, err
}

func (p *instrumentedProvider) Games(ctx context.Context, q balldontlie.GamesQuery) (balldontlie.GamesResponse, error) {
	if p.inner == nil {
		return balldontlie.GamesResponse{}, ErrProviderUnavailable
	}
	start := p.now()
	resp, err := p.inner.Games(ctx, q)
	p.observe(ctx, EndpointGames, start, len(resp.Data), err,
		slog.Int(logging.FieldTeamID, q.TeamID),
		slog.Int(logging.FieldCursor, q.Cursor),
	)
	return resp, err
}

func (p *instrumentedProvider) Players(ctx context.Context, q balldontlie.PlayersQuery) (balldontlie.PlayersResponse, error) {
	if p.inner == nil {
		return balldontlie.PlayersResponse{}, ErrProviderUnavailable
	}
	start := p.now()
	resp, err := p.inner.Players(ctx, q)
	p.observe(ctx, EndpointPlayers, start, len(resp.Data), err,
		slog.String(logging.FieldQuery, q.Search),
		slog.Int(logging.FieldCursor, q.Cursor),
	)
	return resp, err
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, count int, err error, attrs ...any) {
	name := p.Name()
	elapsed := p.now().Sub(start)
	label := errorLabel(err)

	p.metrics.RecordUpstreamCall(name, endpoint, elapsed, label)
	if statusErr, ok := balldontlie.AsStatusError(err); ok && statusErr.StatusCode == http.StatusTooManyRequests {
		p.metrics.RecordRateLimit(name, endpoint, statusErr.RetryAfter)
	}

	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	msg := "upstream call"
	if err != nil {
		msg = "upstream call failed"
		attrs = append(attrs, slog.String(logging.FieldErrorKind, label), slog.Any("error", err))
	} else {
		attrs = append(attrs, slog.Int(logging.FieldCount, count))
	}

	// Prefer the request-scoped logger so the entry carries the request id.
	logger := logging.FromContext(ctx, p.logger)
	if logger == nil {
		return
	}
	attrs = append(attrs, slog.String(logging.FieldProvider, name), slog.String(logging.FieldEndpoint, endpoint))
	logger.Log(ctx, slog.LevelDebug, msg, attrs...)
}

// errorLabel is a low-cardinality label for metrics: the HTTP status for
// upstream rejections, "canceled" for abandoned calls, "transport" otherwise.
func errorLabel(err error) string {
	if err == nil {
		return ""
	}
	if statusErr, ok := balldontlie.AsStatusError(err); ok {
		return "http_" + strconv.Itoa(statusErr.StatusCode)
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return "transport"
}
