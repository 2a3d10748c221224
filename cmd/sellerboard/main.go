// Package main is the entry point for the Sellerboard dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/brunovms/sellerboard/business/catalog"
	catalogDI "github.com/brunovms/sellerboard/business/catalog/di"
	catalogDomain "github.com/brunovms/sellerboard/business/catalog/domain"
	"github.com/brunovms/sellerboard/business/profit"
	profitDI "github.com/brunovms/sellerboard/business/profit/di"
	"github.com/brunovms/sellerboard/business/report"
	reportApp "github.com/brunovms/sellerboard/business/report/app"
	reportDI "github.com/brunovms/sellerboard/business/report/di"
	"github.com/brunovms/sellerboard/internal/apm"
	"github.com/brunovms/sellerboard/internal/config"
	"github.com/brunovms/sellerboard/internal/health"
	"github.com/brunovms/sellerboard/internal/logger"
	"github.com/brunovms/sellerboard/internal/metrics"
	"github.com/brunovms/sellerboard/internal/monolith"
	"github.com/brunovms/sellerboard/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Print one report page to stdout instead of the TUI")
	pageFlag := flag.Int("page", 1, "Page to fetch in CLI mode")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sellerboard %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for scripting and debugging
	tuiMode := !*cliMode

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	// Run application
	if err := run(ctx, *configPath, tuiMode, *pageFlag); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, tuiMode bool, cliPage int) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Set TUI mode in config so modules know
	cfg.Dashboard.TUIMode = tuiMode

	// Setup logger (only log to stderr in CLI mode)
	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if tuiMode {
		// In TUI mode, suppress logs (discard output)
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
		log.Info(ctx, "starting sellerboard",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		// Set service name env var for OTEL
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		// Endpoints with an http(s) scheme go to the OTLP/HTTP exporter
		// (collector port 4318); bare host:port goes over gRPC (4317).
		provider := apm.OTLPProvider
		if strings.HasPrefix(cfg.Telemetry.OTLPEndpoint, "http://") ||
			strings.HasPrefix(cfg.Telemetry.OTLPEndpoint, "https://") {
			provider = apm.OTLPHTTPProvider
		}
		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(provider, log))
		log.Info(ctx, "tracing initialized", "provider", string(provider), "endpoint", cfg.Telemetry.OTLPEndpoint)

		// Initialize metrics with Prometheus
		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		// Start Prometheus metrics server in background
		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	// Define modules in dependency order
	modules := []monolith.Module{
		&catalog.Module{}, // Must be first - provides the listing fetcher
		&profit.Module{},  // Pure calculations, no dependencies
		&report.Module{},  // Depends on catalog and profit
	}

	// Register all module services
	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	// Health check server (readiness probes the listing API)
	if cfg.Telemetry.Enabled {
		healthServer := health.NewServer(cfg.Telemetry.HealthPort, version)
		healthServer.RegisterCheck("announcements", catalogDI.GetCatalogService(mono.Services()).HealthCheck)
		if err := healthServer.Start(); err != nil {
			log.Warn(ctx, "failed to start health server", "error", err)
		} else {
			log.Info(ctx, "health server started", "port", cfg.Telemetry.HealthPort)
		}
		defer healthServer.Stop(ctx)
	}

	services := ui.Services{
		Catalog: catalogDI.GetCatalogService(mono.Services()),
		Profit:  profitDI.GetProfitService(mono.Services()),
		Report:  reportDI.GetReportService(mono.Services()),
		Export:  reportDI.GetXLSXReporter(mono.Services()),
	}

	if tuiMode {
		return ui.Run(services)
	}

	return runCLI(ctx, services, reportDI.GetConsoleWriter(mono.Services()), cliPage, log)
}

// runCLI fetches one page and prints the report to stdout.
func runCLI(ctx context.Context, services ui.Services, writer reportApp.Reporter, page int, log *logger.Logger) error {
	log.Info(ctx, "fetching listings", "page", page)

	p, err := services.Catalog.FetchPage(ctx, page, catalogDomain.Filter{})
	if err != nil {
		return fmt.Errorf("failed to fetch page %d: %w", page, err)
	}

	rep := services.Report.Build(p)
	dest, err := writer.Write(ctx, rep)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Info(ctx, "report written", "destination", dest, "listings", len(p.Listings))
	return nil
}
