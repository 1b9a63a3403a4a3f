package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tablegrab/tablegrab/internal/app"
	"github.com/tablegrab/tablegrab/internal/table"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		pageURL    string
		outputPath string
		pdfPath    string
		selector   string
		skipHeader int
		columns    string
		linkColumn string
		timeout    time.Duration
		userAgent  string
		configPath string
		verbose    bool
	)

	flag.StringVar(&pageURL, "url", os.Getenv("TABLEGRAB_URL"), "Page URL to scrape")
	flag.StringVar(&outputPath, "output", app.OutputDefault, "Path to write the CSV artifact")
	flag.StringVar(&pdfPath, "output.pdf", "", "Optional path to also render the table as PDF")
	flag.StringVar(&selector, "table.selector", "", "Selector locating the target table (default: first <table>)")
	flag.IntVar(&skipHeader, "table.skipHeader", 0, "Leading rows to drop as headers")
	flag.StringVar(&columns, "columns", "", "Comma-separated output column names, in order")
	flag.StringVar(&linkColumn, "columns.link", "", "Column filled from the row's resolved link instead of cell text")
	flag.DurationVar(&timeout, "timeout", 0, "Fetch timeout (default 30s)")
	flag.StringVar(&userAgent, "ua", app.UserAgentDefault, "User-Agent for the request")
	flag.StringVar(&configPath, "config", os.Getenv("TABLEGRAB_CONFIG"), "Optional dataset config file (YAML or JSON)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		URL:            pageURL,
		OutputPath:     outputPath,
		OutputPDFPath:  pdfPath,
		TableSelector:  selector,
		SkipHeaderRows: skipHeader,
		LinkColumn:     linkColumn,
		Timeout:        timeout,
		UserAgent:      userAgent,
		Verbose:        verbose,
	}

	// Parse the column list into an ordered slice
	if s := strings.TrimSpace(columns); s != "" {
		parts := strings.Split(s, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if v := strings.TrimSpace(p); v != "" {
				list = append(list, v)
			}
		}
		cfg.Columns = list
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: a missing table is the one condition callers
		// script against, so it gets a distinct code.
		if errors.Is(err, table.ErrTableNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
