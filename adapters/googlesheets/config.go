package googlesheets

import (
	"fmt"
	"time"
)

// Config configures the Google Sheets transport.
type Config struct {
	// SpreadsheetID is the document ID from the spreadsheet URL.
	SpreadsheetID string

	// ReadOnly requests the read-only OAuth scope. Write operations
	// will fail at the API when set.
	ReadOnly bool

	// MaxRetries bounds retries of rate-limited or failed API calls
	// (default 3). Retries apply to quota and server errors only.
	MaxRetries int

	// RetryInterval is the base interval for exponential backoff
	// between retries (default 1s).
	RetryInterval time.Duration
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required")
	}
	return nil
}

func (c *Config) withDefaults() Config {
	cfg := *c
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 1 * time.Second
	}
	return cfg
}

// URL returns the browser link to the spreadsheet.
func URL(spreadsheetID string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=0", spreadsheetID)
}

// PageURL returns the browser link to one page of the spreadsheet.
func PageURL(spreadsheetID string, pageID int64) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", spreadsheetID, pageID)
}
