package slysheets

import "context"

// CellValue is the dynamic type of one cell: int64, float64, string,
// or nil for an empty cell. No other types are produced by transports.
type CellValue = interface{}

// PageMeta describes one page of a spreadsheet.
type PageMeta struct {
	ID          int64
	Title       string
	ColumnCount int64
}

// Metadata describes a spreadsheet: its title, its default time zone
// as an IANA name, and its pages.
type Metadata struct {
	Title    string
	TimeZone string
	Pages    []PageMeta
}

// Transport is the remote-store collaborator. Range arguments are
// canonical A1 notation strings produced by Range.String. Transport
// errors propagate to callers unchanged; any retry or sequencing
// policy belongs to the implementation.
type Transport interface {
	// FetchValues reads the unformatted cell values of a range. Rows
	// and trailing cells the store omits are left short; the caller
	// pads them.
	FetchValues(ctx context.Context, rng string) ([][]CellValue, error)

	// UpdateValues overwrites a range with values, interpreted
	// literally.
	UpdateValues(ctx context.Context, rng string, values [][]CellValue) error

	// AppendValues appends values after the data table found at
	// searchRange.
	AppendValues(ctx context.Context, searchRange string, values [][]CellValue) error

	// ClearValues deletes the contents of a range, keeping formatting.
	ClearValues(ctx context.Context, rng string) error

	// FetchMetadata reads the spreadsheet's properties and page list.
	FetchMetadata(ctx context.Context) (*Metadata, error)
}
