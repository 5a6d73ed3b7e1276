package simsched

import (
	"github.com/viant/afs/storage"
	"github.com/viant/simsched/scheduler"
	"github.com/viant/simsched/service/dao"
	"github.com/viant/simsched/service/dispatch"
	"github.com/viant/simsched/service/meta"
	"github.com/viant/simsched/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the engine service.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithMaxTicks caps the number of simulated ticks per run.
func WithMaxTicks(maxTicks int) Option {
	return func(s *Service) {
		if s.config == nil {
			s.config = DefaultConfig()
		}
		s.config.Dispatch.MaxTicks = maxTicks
	}
}

// WithMetaService sets the asset loader.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the base URL workload locations resolve against.
func WithMetaBaseURL(url string) Option {
	return func(s *Service) {
		s.metaBaseURL = url
	}
}

// WithMetaFsOptions sets file system options for the asset loader.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithRunDAO sets the store run records are persisted through.
func WithRunDAO(dao dao.Service[string, dispatch.Run]) Option {
	return func(s *Service) {
		s.runtime.runDAO = dao
	}
}

// WithPolicy registers a custom scheduling policy before the engine starts.
func WithPolicy(name string, factory scheduler.Factory) Option {
	return func(s *Service) {
		if s.customPolicies == nil {
			s.customPolicies = make(map[string]scheduler.Factory)
		}
		s.customPolicies[name] = factory
	}
}

// WithObserver installs a per-tick observer on the dispatch driver.
func WithObserver(observer dispatch.Observer) Option {
	return func(s *Service) {
		s.dispatchOptions = append(s.dispatchOptions, dispatch.WithObserver(observer))
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter.
// If outputFile is empty spans go to stdout; safe to call multiple times -
// the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter (OTLP, Jaeger, Zipkin, ...).
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
