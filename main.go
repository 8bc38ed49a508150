package main

import (
	"call-staffing/api"
	"call-staffing/config"
	"call-staffing/formatter"
	"call-staffing/metrics"
	"call-staffing/models"
	"call-staffing/parser"
	"call-staffing/staffing"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Define flags
	input := flag.String("input", "", "Input CSV file of parameter sets (optional)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	arrivalRate := flag.Float64("arrival-rate", 0, "Calls per hour (default from model)")
	serviceTime := flag.Float64("service-time", 0, "Average handling time in seconds (default from model)")
	abandonment := flag.Float64("abandonment", -1, "Abandonment rate in percent (default from model)")
	unavailability := flag.Float64("unavailability", -1, "Unavailability in percent (default from model)")
	modelFile := flag.String("model", cfg.ModelFile, "YAML model file with assumptions and fixed constants")
	locale := flag.String("locale", cfg.Locale, "Locale used to group thousands in text output")
	httpAddr := flag.String("http-addr", cfg.HTTPAddr, "Serve the JSON API on this address instead of a one-shot run (e.g., :8080)")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", cfg.PushURL, "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug|info|warn|error")

	// Parse command-line flags
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Warn().Str("level", *logLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	lang, err := language.Parse(*locale)
	if err != nil {
		fmt.Printf("Error: invalid locale %q: %v\n", *locale, err)
		os.Exit(1)
	}

	modelCfg, err := config.LoadModel(*modelFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		os.Exit(1)
	}
	model, err := staffing.NewModel(modelCfg.Assumptions)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		os.Exit(1)
	}

	if *httpAddr != "" {
		serve(*httpAddr, model, modelCfg.Defaults, cfg.AllowedOrigins)
		return
	}

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			log.Info().Msgf("metrics server listening on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Error().Err(err).Msg("metrics server error")
			}
		}()
	}

	var sets []models.ParameterSet
	if *input != "" {
		// Open input file
		file, err := os.Open(*input)
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		sets, err = parser.Parse(file, modelCfg.Defaults)
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			os.Exit(1)
		}
		log.Debug().Int("records", len(sets)).Str("input", *input).Msg("parsed parameter sets")
	} else {
		p := modelCfg.Defaults
		if *arrivalRate != 0 {
			p.ArrivalRate = *arrivalRate
		}
		if *serviceTime != 0 {
			p.ServiceTime = *serviceTime
		}
		if *abandonment >= 0 {
			p.AbandonmentRate = *abandonment / 100
		}
		if *unavailability >= 0 {
			p.UnavailabilityPercentage = *unavailability / 100
		}
		sets = []models.ParameterSet{{Name: "", Parameters: p}}
	}

	metrics.ResetReportGauges()
	reports := make([]models.NamedReport, 0, len(sets))
	for _, set := range sets {
		start := time.Now()
		report, err := model.BuildReport(set.Parameters)
		if err != nil {
			metrics.ObserveError(err)
			fmt.Printf("Error building report %q: %v\n", set.Name, err)
			os.Exit(1)
		}
		metrics.ObserveReport(set.Name, report, time.Since(start).Seconds())
		reports = append(reports, models.NamedReport{Name: set.Name, Report: report})
	}

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(formatter.FormatJSON(reports))
	case "csv":
		fmt.Print(formatter.FormatCSV(reports))
	default: // "text"
		fmt.Print(formatter.FormatText(reports, lang))
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "call_staffing"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			log.Error().Err(err).Str("url", *pushGateway).Msg("error pushing to Pushgateway")
		} else {
			log.Info().Msg("metrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		log.Info().Msg("process kept alive for metric scraping, press Ctrl+C to exit")
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Info().Msg("exiting")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		time.Sleep(100 * time.Millisecond)
	}
}

// serve runs the JSON API until SIGINT or SIGTERM.
func serve(addr string, model *staffing.Model, defaults models.StaffingParameters, allowedOrigins []string) {
	server := api.NewServer(model, defaults, log.Logger)

	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(allowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Strs("allowed_origins", allowedOrigins).Msg("staffing API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
