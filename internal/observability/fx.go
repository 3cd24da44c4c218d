package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/snackcat/internal/observability/logger"
	"github.com/smallbiznis/snackcat/internal/observability/metrics"
	"github.com/smallbiznis/snackcat/internal/observability/tracing"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		provideLoggerConfig,
		logger.New,
		provideRegistry,
		provideHTTPMetrics,
		provideTracingConfig,
		tracing.NewProvider,
	),
	// Force tracer construction even though nothing injects it; the
	// middleware reads the global provider.
	fx.Invoke(func(trace.TracerProvider) {}),
)

// provideRegistry gives the app its own registry so repeated app
// construction (tests) never double-registers collectors.
func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideLoggerConfig(cfg Config) logger.Config {
	return logger.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	}
}

func provideTracingConfig(cfg Config) tracing.Config {
	return tracing.Config{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Environment,
		Version:      cfg.Version,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPProtocol: cfg.OTLPProtocol,
	}
}

func provideHTTPMetrics(reg *prometheus.Registry) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(reg)
}
