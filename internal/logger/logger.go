// Package logger configures the registry's logging and observability.
//
// It uses *zerolog* for structured logging, rotates an optional log
// file with lumberjack and integrates with *New Relic* to forward
// logs and attach trace ids when a license key is configured.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/registry/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerService owns the optional New Relic application.
//
// A nil application means APM is disabled; every consumer checks
// GetApplication() before using it.
type LoggerService struct {
	nrApp *newrelic.Application
	out   io.Writer
}

// NewLoggerService starts the New Relic agent when a license key is set.
// All log output of the process goes to out, SQL tracing and agent debug
// logs included. The CLI query commands pass stderr so stdout stays pure
// JSON.
//
// Agent start-up failures are reported on stderr and degrade to a service
// without an application rather than blocking the registry.
func NewLoggerService(cfg *config.ObservabilityConfig, out io.Writer) *LoggerService {
	service := &LoggerService{out: out}

	if cfg.NewRelic.LicenseKey == "" {
		return service
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"environment": cfg.Environment}
		},
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(service.Output()))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize New Relic: %v\n", err)
		return service
	}

	service.nrApp = app
	return service
}

// Output is the writer logs go to, stdout when none was given.
func (ls *LoggerService) Output() io.Writer {
	if ls == nil || ls.out == nil {
		return os.Stdout
	}
	return ls.out
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes pending APM data.
func (ls *LoggerService) Shutdown() {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// NewLoggerWithService builds the application logger on loggerService's
// output.
//
// Output is JSON in production and for Format "json", a console writer
// otherwise. A configured log file is added as a second writer, and New
// Relic log forwarding wraps the output when the agent is running.
func NewLoggerWithService(cfg *config.ObservabilityConfig, loggerService *LoggerService) zerolog.Logger {
	level := ParseLevel(cfg.GetLogLevel())

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	stdout := loggerService.Output()
	if loggerService != nil && loggerService.GetApplication() != nil {
		stdout = zerologWriter.New(stdout, loggerService.GetApplication())
	}

	var writer io.Writer
	if cfg.IsProduction() || cfg.Logging.Format == "json" {
		writer = stdout
	} else {
		writer = zerolog.ConsoleWriter{Out: stdout, TimeFormat: "2006-01-02 15:04:05"}
	}

	if cfg.Logging.File.Path != "" {
		writer = zerolog.MultiLevelWriter(writer, newFileWriter(cfg.Logging.File))
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()

	if !cfg.IsProduction() {
		logger = logger.With().Stack().Logger()
	}

	return logger
}

func newFileWriter(cfg config.LogFileConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// ParseLevel maps a configured level name to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTraceContext adds trace.id and span.id from a New Relic transaction.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	metadata := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}

// NewPgxLogger returns the console logger used for SQL tracing in local runs.
func NewPgxLogger(level zerolog.Level, out io.Writer) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				// Keep multi-line SQL readable instead of escaped.
				return v
			case []byte:
				return string(v)
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into a pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return int(tracelog.LogLevelTrace)
	case zerolog.DebugLevel:
		return int(tracelog.LogLevelDebug)
	case zerolog.InfoLevel:
		return int(tracelog.LogLevelInfo)
	case zerolog.WarnLevel:
		return int(tracelog.LogLevelWarn)
	case zerolog.ErrorLevel:
		return int(tracelog.LogLevelError)
	default:
		return int(tracelog.LogLevelNone)
	}
}
