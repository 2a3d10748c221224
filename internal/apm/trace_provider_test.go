package apm

import (
	"io"
	"testing"

	"github.com/brunovms/sellerboard/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelError, "test", nil)
}

func TestWithProviderSelection(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	tests := []struct {
		name     string
		provider Provider
		want     string
	}{
		{name: "otlp grpc", provider: OTLPProvider, want: string(OTLPProvider)},
		{name: "otlp http", provider: OTLPHTTPProvider, want: string(OTLPHTTPProvider)},
		{name: "console", provider: ConsoleProvider, want: string(ConsoleProvider)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TracerOptions{}
			WithProvider(tt.provider, testLogger())(opts)

			if opts.tracerProviderName != tt.want {
				t.Errorf("tracerProviderName = %q, want %q", opts.tracerProviderName, tt.want)
			}
			if opts.exporter == nil {
				t.Error("exporter not constructed")
			}
			if opts.useEmpty {
				t.Error("useEmpty = true, want false")
			}
		})
	}
}

func TestWithProviderUnknownFallsBackToEmpty(t *testing.T) {
	opts := &TracerOptions{}
	WithProvider(Provider("BOGUS"), testLogger())(opts)

	if !opts.useEmpty {
		t.Error("useEmpty = false, want true for unknown provider")
	}
	if opts.tracerProviderName != string(EmptyProvider) {
		t.Errorf("tracerProviderName = %q, want %q", opts.tracerProviderName, EmptyProvider)
	}
}

func TestNewTraceProviderDefaultsToEmpty(t *testing.T) {
	tp := NewTraceProvider(testLogger())
	if tp == nil {
		t.Fatal("NewTraceProvider returned nil")
	}
	if err := tp.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
