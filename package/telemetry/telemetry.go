package telemetry

import (
	"context"
	"time"

	"github.com/nickmackenzie/folder-hero/package/span"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	MeterName  = "folderhero-meter"
	TracerName = span.TracerName
)

type Config interface {
	GetAppName() *string
	GetAppVersion() *string
	GetTelemetryUrl() *string
	GetTelemetryOrganization() *string
}

type Telemetry struct {
	Layer      *span.Layer
	Meter      metric.Meter
	Tracer     trace.Tracer
	Instrument *Instrument
	shutdown   []func(context.Context) error
}

// New installs otlp exporters when a telemetry url is configured. Without
// one the global no-op providers stay in place.
func New(config Config) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Layer:      span.NewLayer("telemetry", "package"),
		Meter:      nil,
		Tracer:     nil,
		Instrument: nil,
		shutdown:   make([]func(context.Context) error, 0),
	}

	if config.GetTelemetryUrl() != nil && *config.GetTelemetryUrl() != "" {
		// * construct resource
		attributes := make([]attribute.KeyValue, 0)
		if config.GetAppName() != nil {
			attributes = append(attributes, semconv.ServiceName(*config.GetAppName()))
		}
		if config.GetAppVersion() != nil {
			attributes = append(attributes, semconv.ServiceVersion(*config.GetAppVersion()))
		}
		res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize resource", err)
		}

		// * install providers
		if err := telemetry.installMeter(config, res); err != nil {
			return nil, err
		}
		if err := telemetry.installTracer(config, res); err != nil {
			return nil, err
		}
	}

	telemetry.Meter = otel.Meter(MeterName)
	telemetry.Tracer = otel.Tracer(TracerName)

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instruments", err)
	}

	return telemetry, nil
}

func headers(config Config) map[string]string {
	h := make(map[string]string)
	if config.GetTelemetryOrganization() != nil {
		h["X-Scope-OrgID"] = *config.GetTelemetryOrganization()
	}
	return h
}

func (r *Telemetry) installMeter(config Config, res *resource.Resource) error {
	// * construct exporter
	exporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(*config.GetTelemetryUrl()),
		otlpmetricgrpc.WithHeaders(headers(config)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return span.NewError(nil, "unable to initialize metric exporter", err)
	}

	// * construct provider
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(provider)
	r.shutdown = append(r.shutdown, provider.Shutdown)
	return nil
}

func (r *Telemetry) installTracer(config Config, res *resource.Resource) error {
	// * construct exporter
	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(*config.GetTelemetryUrl()),
		otlptracegrpc.WithHeaders(headers(config)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return span.NewError(nil, "unable to initialize trace exporter", err)
	}

	// * construct provider
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	r.shutdown = append(r.shutdown, provider.Shutdown)
	return nil
}

// Shutdown flushes and stops any installed providers.
func (r *Telemetry) Shutdown(ctx context.Context) error {
	for _, fn := range r.shutdown {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}
