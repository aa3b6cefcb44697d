// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces
// for debugging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance.
//
// When New Relic is not configured (empty license key), nrApp stays nil
// and every consumer degrades gracefully: middleware becomes a no-op,
// the log writer falls back to plain stdout, traces are never created.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application instance, or nil if
// New Relic is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes any buffered telemetry and stops the agent.
// Safe to call when New Relic is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the LoggerService wrapper.
//
// Setup performed:
//   - parse the configured log level and apply it globally
//   - initialize the New Relic agent when a license key is present
//   - pick the log output:
//     console writer for local development ("console" format),
//     a New Relic forwarding writer when log forwarding is on,
//     plain stdout JSON otherwise
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		// An invalid level should have been caught by config validation;
		// fall back to info instead of refusing to boot over a log knob.
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	service := &LoggerService{}

	// New Relic is opt-in: no license key, no agent.
	if cfg.Observability.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
			func(c *newrelic.Config) {
				if cfg.Observability.NewRelic.DebugLogging {
					c.Logger = newrelic.NewDebugLogger(os.Stdout)
				}
			},
		)
		if err != nil {
			return nil, nil, err
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout

	switch {
	case cfg.Observability.Logging.Format == "console":
		// Human-friendly output for local development.
		out = zerolog.ConsoleWriter{Out: os.Stderr}

	case service.nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled:
		// zerologWriter decorates each JSON log line with linking
		// metadata and forwards it to New Relic.
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}

	l := zerolog.New(out).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &l, service, nil
}

// WithTraceContext returns a child logger carrying the trace and span
// ids of the given transaction, so log lines can be correlated with
// distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()
	return l.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
