package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	HttpDurationHistogram  metric.Int64Histogram
	HttpActiveRequestGauge metric.Int64UpDownCounter
	SessionActiveGauge     metric.Int64UpDownCounter
	ExportArtifactCounter  metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	httpDurationHistogram, err := meter.Int64Histogram(
		"folderhero.http.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	httpActiveRequestGauge, err := meter.Int64UpDownCounter(
		"folderhero.http.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	sessionActiveGauge, err := meter.Int64UpDownCounter(
		"folderhero.session.active",
		metric.WithDescription("Number of open editing sessions"),
	)
	if err != nil {
		return nil, err
	}

	exportArtifactCounter, err := meter.Int64Counter(
		"folderhero.export.artifacts",
		metric.WithDescription("Number of exported artifacts"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		HttpDurationHistogram:  httpDurationHistogram,
		HttpActiveRequestGauge: httpActiveRequestGauge,
		SessionActiveGauge:     sessionActiveGauge,
		ExportArtifactCounter:  exportArtifactCounter,
	}, nil
}

func (r *Instrument) HttpDurationRecord(ctx context.Context, duration int64, route string, status int) {
	r.HttpDurationHistogram.Record(
		ctx,
		duration,
		metric.WithAttributes(
			attribute.String("http.route", route),
			attribute.Int("http.status", status),
		),
	)
}

func (r *Instrument) HttpActiveRequest(ctx context.Context, delta int64, route string) {
	r.HttpActiveRequestGauge.Add(ctx, delta, metric.WithAttributes(attribute.String("http.route", route)))
}

func (r *Instrument) SessionActive(ctx context.Context, delta int64) {
	r.SessionActiveGauge.Add(ctx, delta)
}

func (r *Instrument) ExportArtifact(ctx context.Context, name string) {
	r.ExportArtifactCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("artifact.name", name)))
}
