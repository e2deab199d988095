package tracer

import (
	"context"

	"sentiment-dashboard/internal/config"
	"sentiment-dashboard/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const serviceName = "sentiment-dashboard"

// InitTracer installs an OTLP HTTP exporter when tracing is enabled and
// returns its shutdown function. Disabled tracing returns a no-op shutdown and
// leaves the global no-op provider in place.
func InitTracer(cfg config.TracingConfig, log logger.ILogger) func(context.Context) error {
	if !cfg.Enabled {
		log.Info("TRACER", "tracing disabled (set OTEL_ENABLED=true to enable)", nil)
		return func(context.Context) error { return nil }
	}

	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Warn("TRACER", "failed to create OTLP exporter, tracing disabled", map[string]interface{}{"error": err})
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	log.Info("TRACER", "OpenTelemetry tracer initialized", map[string]interface{}{"endpoint": cfg.Endpoint})

	return tp.Shutdown
}
