package formguard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formguard/pkg/diag"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/metrics"
	"github.com/dmitrymomot/formguard/pkg/schema"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// ErrNoMetrics is returned by MetricsHandler when metrics are disabled.
var ErrNoMetrics = errors.New("metrics are disabled")

// Guard bundles a configured validator with the providers, logger and
// metrics it was built from.
type Guard struct {
	*validator.Validator

	Structs   *schema.StructProvider
	Documents *schema.DocumentProvider
	Metrics   *metrics.Collector
	Logger    *slog.Logger

	registry *prometheus.Registry
}

// NewFromEnv loads validator.Config from the environment and calls New.
func NewFromEnv(samples ...any) (*Guard, error) {
	cfg, err := validator.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg, samples...)
}

// New builds a Guard: a struct provider with samples registered, a document
// provider when cfg.SchemaDir is set, a logger for diagnostics and,
// if enabled, a private Prometheus registry.
func New(cfg validator.Config, samples ...any) (*Guard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	format, _ := logger.ParseFormat(cfg.LogFormat)
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithService("formguard"),
		logger.WithContextValue("request_id", RequestIDKey),
	)

	g := &Guard{Logger: log}

	structOpts := []schema.StructOption{
		schema.WithTagName(cfg.TagName),
		schema.WithNameTag(cfg.NameTag),
	}
	if cfg.StrictKinds {
		structOpts = append(structOpts, schema.WithStrictKinds())
	}
	g.Structs = schema.NewStructProvider(structOpts...)
	if err := g.Structs.Register(samples...); err != nil {
		return nil, fmt.Errorf("register types: %w", err)
	}

	providers := []schema.Provider{g.Structs}
	if cfg.SchemaDir != "" {
		docs, err := schema.LoadDocumentProvider(cfg.SchemaDir)
		if err != nil {
			return nil, fmt.Errorf("load document schemas: %w", err)
		}
		g.Documents = docs
		providers = append(providers, docs)
		log.Debug("document schemas loaded",
			slog.String("dir", cfg.SchemaDir),
			logger.Count(len(docs.Types())),
		)
	}

	var sink diag.Sink = diag.NewLogSink(log)
	opts := []validator.Option{validator.WithMaxDepth(cfg.MaxDepth)}
	if cfg.MetricsEnabled {
		g.registry = prometheus.NewRegistry()
		g.Metrics = metrics.NewWithRegistry(g.registry, cfg.MetricsPrefix)
		sink = diag.Multi(sink, g.Metrics)
		opts = append(opts, validator.WithObserver(g.Metrics))
	}
	opts = append(opts, validator.WithSink(sink))

	g.Validator = validator.New(schema.Chain(providers...), opts...)
	return g, nil
}

// Check validates root and returns a ValidationError when it has
// violations.
func (g *Guard) Check(ctx context.Context, root any) error {
	vs := g.ValidateContext(ctx, root)
	if vs.IsEmpty() {
		return nil
	}
	return FromViolations(vs)
}

// Gatherer returns the Prometheus registry of the guard, or nil when
// metrics are disabled.
func (g *Guard) Gatherer() prometheus.Gatherer {
	if g.registry == nil {
		return nil
	}
	return g.registry
}

// MetricsHandler serves the guard's metrics in the Prometheus text format.
func (g *Guard) MetricsHandler() (http.Handler, error) {
	if g.registry == nil {
		return nil, ErrNoMetrics
	}
	return promhttp.HandlerFor(g.registry, promhttp.HandlerOpts{}), nil
}
