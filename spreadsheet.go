package slysheets

import (
	"context"
	"fmt"
	"time"
)

// Spreadsheet is a session over one remote spreadsheet. All remote
// access goes through the Transport; the only state kept between
// calls is the cached time zone and each Page's header map.
type Spreadsheet struct {
	transport Transport
	loc       *time.Location
}

// New creates a session backed by the given transport.
func New(transport Transport) *Spreadsheet {
	return &Spreadsheet{transport: transport}
}

// Title returns the spreadsheet's title.
func (s *Spreadsheet) Title(ctx context.Context) (string, error) {
	meta, err := s.transport.FetchMetadata(ctx)
	if err != nil {
		return "", err
	}
	return meta.Title, nil
}

// TimeZone returns the spreadsheet's default time zone. The location
// is cached after the first fetch.
func (s *Spreadsheet) TimeZone(ctx context.Context) (*time.Location, error) {
	if s.loc != nil {
		return s.loc, nil
	}
	meta, err := s.transport.FetchMetadata(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(meta.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet time zone %q: %w", meta.TimeZone, err)
	}
	s.loc = loc
	return loc, nil
}

// Pages returns a Page for each page of the spreadsheet.
func (s *Spreadsheet) Pages(ctx context.Context) ([]*Page, error) {
	meta, err := s.transport.FetchMetadata(ctx)
	if err != nil {
		return nil, err
	}
	pages := make([]*Page, 0, len(meta.Pages))
	for _, pm := range meta.Pages {
		pages = append(pages, &Page{
			sheet:       s,
			ID:          pm.ID,
			Title:       pm.Title,
			ColumnCount: pm.ColumnCount,
		})
	}
	return pages, nil
}

// Page returns the page with the given title.
func (s *Spreadsheet) Page(ctx context.Context, title string) (*Page, error) {
	pages, err := s.Pages(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPage, title)
}

// Fetch reads the values of a resolved range, padded out to the
// range's declared shape.
func (s *Spreadsheet) Fetch(ctx context.Context, rng Range) ([][]CellValue, error) {
	if rng.Page == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedPage, rng)
	}
	values, err := s.transport.FetchValues(ctx, rng.String())
	if err != nil {
		return nil, err
	}
	return padValues(rng.Shape(), values), nil
}

// Update overwrites a resolved range with values.
func (s *Spreadsheet) Update(ctx context.Context, rng Range, values [][]CellValue) error {
	if rng.Page == "" {
		return fmt.Errorf("%w: %s", ErrUnresolvedPage, rng)
	}
	return s.transport.UpdateValues(ctx, rng.String(), values)
}

// Clear deletes the contents of a resolved range.
func (s *Spreadsheet) Clear(ctx context.Context, rng Range) error {
	if rng.Page == "" {
		return fmt.Errorf("%w: %s", ErrUnresolvedPage, rng)
	}
	return s.transport.ClearValues(ctx, rng.String())
}

// Extend appends rows after the data table found at search (A1
// notation without a page) on the named page.
func (s *Spreadsheet) Extend(ctx context.Context, page string, search string, values [][]CellValue) error {
	if page == "" {
		return fmt.Errorf("%w: extend needs a page", ErrUnresolvedPage)
	}
	searchRange := fmt.Sprintf("'%s'!%s", page, search)
	return s.transport.AppendValues(ctx, searchRange, values)
}

// Cell returns the value of a single cell. The notation must carry a
// page name.
func (s *Spreadsheet) Cell(ctx context.Context, a1 string) (CellValue, error) {
	rng, err := ParseRange(a1)
	if err != nil {
		return nil, err
	}
	values, err := s.Fetch(ctx, rng)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, nil
	}
	return values[0][0], nil
}

// SetCell overwrites a single cell. The notation must carry a page
// name.
func (s *Spreadsheet) SetCell(ctx context.Context, a1 string, value CellValue) error {
	rng, err := ParseRange(a1)
	if err != nil {
		return err
	}
	return s.Update(ctx, rng, [][]CellValue{{value}})
}

// DateAt reads a cell holding a serial date value and converts it to
// a calendar time in the spreadsheet's time zone.
func (s *Spreadsheet) DateAt(ctx context.Context, a1 string) (time.Time, error) {
	v, err := s.Cell(ctx, a1)
	if err != nil {
		return time.Time{}, err
	}
	var serial float64
	switch stamp := v.(type) {
	case float64:
		serial = stamp
	case int64:
		serial = float64(stamp)
	case int:
		serial = float64(stamp)
	default:
		return time.Time{}, fmt.Errorf("cell %s: expected a serial date, got %v", a1, v)
	}
	loc, err := s.TimeZone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return SerialDate(serial, loc), nil
}
