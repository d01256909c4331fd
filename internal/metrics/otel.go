package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "nba-data-client"
	otlpExportInterval = 15 * time.Second
)

// Attribute keys on exported series.
const (
	attrMethod    = "method"
	attrRoute     = "route"
	attrStatus    = "status"
	attrProvider  = "provider"
	attrEndpoint  = "endpoint"
	attrErrorKind = "error_kind"
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup builds a meter provider that always serves a Prometheus scrape
// handler and, when OtlpEndpoint is set, also pushes over OTLP/HTTP.
// When disabled it returns an in-memory Recorder and a nil handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	reg := prometheus.NewRegistry()
	promReader, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		pushReader, err := otlpReader(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(pushReader))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, err
	}
	provider := sdkmetric.NewMeterProvider(append(opts, sdkmetric.WithResource(res))...)

	inst, err := newOtelInstruments(provider.Meter(cfg.ServiceName))
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), provider.Shutdown, nil
}

func otlpReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpExportInterval)), nil
}

type otelInstruments struct {
	requests        metric.Int64Counter
	requestLatency  metric.Float64Histogram
	upstreamCalls   metric.Int64Counter
	upstreamErrors  metric.Int64Counter
	upstreamLatency metric.Float64Histogram
	rateLimitHits   metric.Int64Counter
	retryAfter      metric.Float64Histogram
}

// instrumentBuilder keeps the first creation error so the constructor reads
// as a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	errs  []error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.errs = append(b.errs, err)
	return c
}

func (b *instrumentBuilder) millis(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("ms"))
	b.errs = append(b.errs, err)
	return h
}

func newOtelInstruments(meter metric.Meter) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: meter}
	inst := &otelInstruments{
		requests:        b.counter("http_requests_total", "REST requests served"),
		requestLatency:  b.millis("http_request_duration", "REST request latency"),
		upstreamCalls:   b.counter("upstream_calls_total", "Requests sent to the stats provider"),
		upstreamErrors:  b.counter("upstream_errors_total", "Failed provider requests by error kind"),
		upstreamLatency: b.millis("upstream_duration", "Provider round-trip latency"),
		rateLimitHits:   b.counter("upstream_rate_limit_hits_total", "HTTP 429 answers from the provider"),
		retryAfter:      b.millis("upstream_retry_after", "Retry-After advertised with a 429"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, route string, status int, duration time.Duration) {
	set := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrRoute, route),
		attribute.Int(attrStatus, status),
	)
	ctx := context.Background()
	o.requests.Add(ctx, 1, set)
	o.requestLatency.Record(ctx, millis(duration), set)
}

func (o *otelInstruments) recordUpstreamCall(provider, endpoint string, duration time.Duration, errorKind string) {
	ctx := context.Background()
	attrs := upstreamAttrs(provider, endpoint)
	o.upstreamCalls.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.upstreamLatency.Record(ctx, millis(duration), metric.WithAttributes(attrs...))
	if errorKind != "" {
		o.upstreamErrors.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String(attrErrorKind, errorKind))...))
	}
}

func (o *otelInstruments) recordRateLimit(provider, endpoint string, retryAfter time.Duration) {
	ctx := context.Background()
	set := metric.WithAttributes(upstreamAttrs(provider, endpoint)...)
	o.rateLimitHits.Add(ctx, 1, set)
	if retryAfter > 0 {
		o.retryAfter.Record(ctx, millis(retryAfter), set)
	}
}

func upstreamAttrs(provider, endpoint string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(attrProvider, provider),
		attribute.String(attrEndpoint, endpoint),
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
