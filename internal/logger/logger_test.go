package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/deppfellow/registry/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}

	for in, want := range tests {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(in)); got != want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerWithService_JSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := NewLoggerWithService(cfg, NewLoggerService(cfg, &buf))

	log.Info().Msg("dropped")
	log.Warn().Int64("director_id", 7).Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "kept" || entry["service"] != config.ServiceName || entry["environment"] != "production" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["director_id"] != float64(7) {
		t.Fatalf("director_id = %v", entry["director_id"])
	}
}

func TestNewLoggerService_NoLicenseKey(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig(), nil)
	if ls.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	ls.Shutdown()
}

func TestLoggerService_Output(t *testing.T) {
	var nilService *LoggerService
	if nilService.Output() != os.Stdout {
		t.Fatal("nil service should log to stdout")
	}

	var buf bytes.Buffer
	if got := NewLoggerService(config.DefaultObservabilityConfig(), &buf).Output(); got != &buf {
		t.Fatalf("Output() = %v, want the configured writer", got)
	}
}

func TestNewPgxLogger_WritesToGivenOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewPgxLogger(zerolog.InfoLevel, &buf)
	log.Info().Str("sql", "SELECT 1").Msg("Query")

	if !bytes.Contains(buf.Bytes(), []byte("SELECT 1")) {
		t.Fatalf("SQL trace not written to the given output: %q", buf.String())
	}
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := WithTraceContext(zerolog.New(&buf), nil)
	log.Info().Msg("plain")

	if bytes.Contains(buf.Bytes(), []byte("trace.id")) {
		t.Fatalf("unexpected trace fields: %s", buf.String())
	}
}
