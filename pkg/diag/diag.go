package diag

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formguard/pkg/constraint"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Diagnostic describes a configuration problem found during a walk.
// Kind is KindUnknown for structural diagnostics such as cycles.
type Diagnostic struct {
	RunID   string
	Kind    constraint.Kind
	Path    string
	Message string
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(ctx context.Context, d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, d Diagnostic)

func (f SinkFunc) Report(ctx context.Context, d Diagnostic) { f(ctx, d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(context.Context, Diagnostic) {})

// LogSink writes diagnostics as warnings.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink over l. A nil logger falls back to slog.Default.
func NewLogSink(l *slog.Logger) *LogSink {
	if l == nil {
		l = slog.Default()
	}
	return &LogSink{log: l}
}

func (s *LogSink) Report(ctx context.Context, d Diagnostic) {
	attrs := []slog.Attr{
		logger.Component("validator"),
		logger.RunID(d.RunID),
		logger.Path(d.Path),
	}
	if d.Kind != constraint.KindUnknown {
		attrs = append(attrs, logger.Constraint(d.Kind.String()))
	}
	s.log.LogAttrs(ctx, slog.LevelWarn, d.Message, attrs...)
}

// Collector keeps diagnostics in memory.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (c *Collector) Report(_ context.Context, d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Messages returns the messages of the collected diagnostics in report order.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.items))
	for _, d := range c.items {
		out = append(out, d.Message)
	}
	return out
}

// ForRun returns the diagnostics reported by a single validation run.
func (c *Collector) ForRun(runID string) []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Diagnostic
	for _, d := range c.items {
		if d.RunID == runID {
			out = append(out, d)
		}
	}
	return out
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Multi fans a diagnostic out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	clean := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			clean = append(clean, s)
		}
	}
	return SinkFunc(func(ctx context.Context, d Diagnostic) {
		for _, s := range clean {
			s.Report(ctx, d)
		}
	})
}
