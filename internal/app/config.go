package app

import "time"

// Config holds runtime configuration for one scrape run.
type Config struct {
	// Source
	URL string

	// Table location
	TableSelector  string
	SkipHeaderRows int

	// Output schema
	Columns    []string
	LinkColumn string

	// Artifacts
	OutputPath    string
	OutputPDFPath string

	// Fetch
	Timeout   time.Duration
	UserAgent string

	// Behavior
	Verbose bool
}
