package excel

import "fmt"

// Config configures the Excel file transport.
type Config struct {
	// FilePath is the .xlsx workbook backing the transport. It is
	// created on first write if missing.
	FilePath string
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("file path is required")
	}
	return nil
}
