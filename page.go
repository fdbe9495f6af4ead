package slysheets

import (
	"context"
	"fmt"
	"time"
)

// Page is one page of a Spreadsheet. It carries the page's lazy
// header map, read once from row 0 on first need. A caller that
// rewrites row 0 must call RefreshHeaders; the map is never
// invalidated automatically.
type Page struct {
	sheet       *Spreadsheet
	ID          int64
	Title       string
	ColumnCount int64

	headerRow []string
	headers   map[string]int
}

// Get resolves a key against this page and returns the shaped result.
// This is the polymorphic entry point: keys may be row indices, row
// spans, A1 notation, header names, or row/column pairs.
func (p *Page) Get(ctx context.Context, key Key) (Result, error) {
	if err := p.ensureHeaders(ctx); err != nil {
		return Result{}, err
	}
	rng, err := ResolveKey(key, p.keyContext())
	if err != nil {
		return Result{}, err
	}
	values, err := p.sheet.Fetch(ctx, rng)
	if err != nil {
		return Result{}, err
	}
	return shapeResult(rng, key, values, p.headers), nil
}

// Values returns the raw padded matrix of an A1 range, inheriting
// this page when the notation names none.
func (p *Page) Values(ctx context.Context, a1 string) ([][]CellValue, error) {
	rng, err := ParseRange(a1)
	if err != nil {
		return nil, err
	}
	return p.sheet.Fetch(ctx, rng.WithPage(p.Title))
}

// Cell returns the value of a single cell on this page.
func (p *Page) Cell(ctx context.Context, a1 string) (CellValue, error) {
	values, err := p.Values(ctx, a1)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, nil
	}
	return values[0][0], nil
}

// Row returns a single row, zero-indexed, across the page's columns.
func (p *Page) Row(ctx context.Context, index int) (Record, error) {
	res, err := p.Get(ctx, Row(index))
	if err != nil {
		return Record{}, err
	}
	// A one-column page collapses the row to a scalar; the backing
	// record is still there either way.
	return res.Rows()[0], nil
}

// Rows returns the rows start through end, inclusive, zero-indexed.
func (p *Page) Rows(ctx context.Context, start, end int) ([]Record, error) {
	res, err := p.Get(ctx, Span{Start: start, Stop: end + 1})
	if err != nil {
		return nil, err
	}
	return res.Rows(), nil
}

// Column returns a whole column's values, zero-indexed, top to the
// end of data.
func (p *Page) Column(ctx context.Context, index int) ([]CellValue, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	rng := Range{Page: p.Title, FromCol: index, ToCol: index, Open: true}
	values, err := p.sheet.Fetch(ctx, rng)
	if err != nil {
		return nil, err
	}
	column := make([]CellValue, 0, len(values))
	for _, row := range values {
		column = append(column, row[0])
	}
	return column, nil
}

// ColumnNamed returns the values of the column whose row 0 header is
// name.
func (p *Page) ColumnNamed(ctx context.Context, name string) ([]CellValue, error) {
	if err := p.ensureHeaders(ctx); err != nil {
		return nil, err
	}
	index, ok := p.headers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeader, name)
	}
	return p.Column(ctx, index)
}

// SetRange overwrites an A1 range with values.
func (p *Page) SetRange(ctx context.Context, a1 string, values [][]CellValue) error {
	rng, err := ParseRange(a1)
	if err != nil {
		return err
	}
	return p.sheet.Update(ctx, rng.WithPage(p.Title), values)
}

// SetCell overwrites a single cell.
func (p *Page) SetCell(ctx context.Context, a1 string, value CellValue) error {
	return p.SetRange(ctx, a1, [][]CellValue{{value}})
}

// Clear deletes the contents of an A1 range, keeping formatting.
func (p *Page) Clear(ctx context.Context, a1 string) error {
	rng, err := ParseRange(a1)
	if err != nil {
		return err
	}
	return p.sheet.Clear(ctx, rng.WithPage(p.Title))
}

// Extend appends rows after the page's data table.
func (p *Page) Extend(ctx context.Context, values [][]CellValue) error {
	return p.sheet.Extend(ctx, p.Title, "A1", values)
}

// Append appends a single row after the page's data table.
func (p *Page) Append(ctx context.Context, row []CellValue) error {
	return p.Extend(ctx, [][]CellValue{row})
}

// ExtendRecords appends rows given as header-to-value maps, projected
// onto the page's header order. Headers a map does not mention become
// empty cells.
func (p *Page) ExtendRecords(ctx context.Context, records []map[string]CellValue) error {
	if err := p.ensureHeaders(ctx); err != nil {
		return err
	}
	rows := make([][]CellValue, 0, len(records))
	for _, rec := range records {
		row := make([]CellValue, len(p.headerRow))
		for i, h := range p.headerRow {
			row[i] = rec[h]
		}
		rows = append(rows, row)
	}
	return p.Extend(ctx, rows)
}

// AppendRecord appends a single row given as a header-to-value map.
func (p *Page) AppendRecord(ctx context.Context, record map[string]CellValue) error {
	return p.ExtendRecords(ctx, []map[string]CellValue{record})
}

// DateAt reads a serial date cell on this page.
func (p *Page) DateAt(ctx context.Context, a1 string) (time.Time, error) {
	rng, err := ParseRange(a1)
	if err != nil {
		return time.Time{}, err
	}
	return p.sheet.DateAt(ctx, rng.WithPage(p.Title).String())
}

// Headers returns the page's header row in column order, fetching it
// on first use.
func (p *Page) Headers(ctx context.Context) ([]string, error) {
	if err := p.ensureHeaders(ctx); err != nil {
		return nil, err
	}
	out := make([]string, len(p.headerRow))
	copy(out, p.headerRow)
	return out, nil
}

// RefreshHeaders re-reads row 0. Callers that mutate the header row
// must refresh before header-based addressing sees the change.
func (p *Page) RefreshHeaders(ctx context.Context) error {
	p.headerRow = nil
	p.headers = nil
	return p.ensureHeaders(ctx)
}

func (p *Page) keyContext() KeyContext {
	toCol := int(p.ColumnCount) - 1
	if toCol < 0 {
		toCol = 0
	}
	return KeyContext{
		Page:    p.Title,
		FromCol: 0,
		ToCol:   toCol,
		Headers: p.headers,
	}
}

// ensureHeaders populates the header map from row 0 once per page.
func (p *Page) ensureHeaders(ctx context.Context) error {
	if p.headers != nil {
		return nil
	}
	rng, err := ResolveKey(Row(0), p.keyContext())
	if err != nil {
		return err
	}
	values, err := p.sheet.Fetch(ctx, rng)
	if err != nil {
		return err
	}
	headerRow := make([]string, 0, len(values[0]))
	headers := make(map[string]int)
	for i, v := range values[0] {
		name := headerName(v)
		headerRow = append(headerRow, name)
		if name == "" {
			continue
		}
		// First occurrence wins for duplicate headers.
		if _, ok := headers[name]; !ok {
			headers[name] = i
		}
	}
	p.headerRow = headerRow
	p.headers = headers
	return nil
}

func headerName(v CellValue) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

