package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/tablegrab/tablegrab/internal/csvout"
	"github.com/tablegrab/tablegrab/internal/extract"
	"github.com/tablegrab/tablegrab/internal/fetch"
	"github.com/tablegrab/tablegrab/internal/table"
)

// App runs the scrape pipeline: fetch the page, locate the table, extract
// one record per row, write the CSV artifact. One run is one straight-line
// pass; every stage receives explicit inputs and returns explicit outputs.
type App struct {
	cfg    Config
	client *fetch.Client
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{
		cfg: cfg,
		client: &fetch.Client{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	base, err := url.Parse(a.cfg.URL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	log.Info().Str("url", a.cfg.URL).Msg("fetching page")
	resp, err := a.client.Get(ctx, a.cfg.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", a.cfg.URL, err)
	}
	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(resp.Body)).Msg("page fetched")

	tbl, err := table.Find(resp.Body, a.cfg.TableSelector)
	if err != nil {
		return fmt.Errorf("locate table: %w", err)
	}
	rows := tbl.Rows(a.cfg.SkipHeaderRows)

	schema := extract.Schema{Columns: a.cfg.Columns, LinkColumn: a.cfg.LinkColumn}
	records := make([]extract.Record, 0, len(rows))
	for i, row := range rows {
		rec, ok := extract.Row(row, schema, base)
		if !ok {
			// Malformed rows (footers, merged cells) are skipped, not fatal.
			log.Warn().Int("row", i+a.cfg.SkipHeaderRows).Int("cells", row.Find("td").Length()).
				Msg("row shape does not match schema; skipping")
			continue
		}
		records = append(records, rec)
	}
	log.Info().Int("rows", len(records)).Int("skipped", len(rows)-len(records)).Msg("rows extracted")

	if err := csvout.Write(a.cfg.OutputPath, a.cfg.Columns, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Info().Str("path", a.cfg.OutputPath).Msg("csv written")

	if a.cfg.OutputPDFPath != "" {
		if err := writeTablePDF(a.cfg.Columns, records, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("pdf written")
	}
	return nil
}
