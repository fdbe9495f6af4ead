// Package excel implements the slysheets transport over a local
// workbook file. It is the offline stand-in for the Google Sheets
// backend: ranges address workbook sheets by the same A1 notation.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	slysheets "github.com/dunkyl/go-slysheets"
	"github.com/xuri/excelize/v2"
)

// Transport implements slysheets.Transport over an .xlsx file.
type Transport struct {
	config Config
	mu     sync.Mutex
}

var _ slysheets.Transport = (*Transport)(nil)

// New creates an Excel transport for the configured workbook.
func New(config Config) (*Transport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Transport{config: config}, nil
}

// FetchValues reads the values of a range. Trailing empty cells and
// rows are left short, as the remote API leaves them.
func (t *Transport) FetchValues(ctx context.Context, rng string) ([][]slysheets.CellValue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := slysheets.ParseRange(rng)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(t.config.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return [][]slysheets.CellValue{}, nil
		}
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.Page, err)
	}

	lastRow := len(rows) - 1
	if !r.Open && r.ToRow < lastRow {
		lastRow = r.ToRow
	}
	values := make([][]slysheets.CellValue, 0)
	for i := r.FromRow; i <= lastRow; i++ {
		row := rows[i]
		cells := make([]slysheets.CellValue, 0)
		for j := r.FromCol; j <= r.ToCol && j < len(row); j++ {
			cells = append(cells, fromCellString(row[j]))
		}
		values = append(values, cells)
	}
	// The remote API omits trailing empty rows; do the same.
	for len(values) > 0 && rowEmpty(values[len(values)-1]) {
		values = values[:len(values)-1]
	}
	return values, nil
}

// UpdateValues overwrites a range with values. Nil cells are left
// untouched, as the remote API leaves null cells.
func (t *Transport) UpdateValues(ctx context.Context, rng string, values [][]slysheets.CellValue) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	r, err := slysheets.ParseRange(rng)
	if err != nil {
		return err
	}
	f, err := t.openOrCreate(r.Page)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, row := range values {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(r.FromCol+j+1, r.FromRow+i+1)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(r.Page, cell, v); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}
	return t.save(f)
}

// AppendValues appends rows below the existing data of the search
// range's sheet, starting at the search range's first column.
func (t *Transport) AppendValues(ctx context.Context, searchRange string, values [][]slysheets.CellValue) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	r, err := slysheets.ParseRange(searchRange)
	if err != nil {
		return err
	}
	f, err := t.openOrCreate(r.Page)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(r.Page)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", r.Page, err)
	}
	start := len(rows)
	for i, row := range values {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(r.FromCol+j+1, start+i+1)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(r.Page, cell, v); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}
	return t.save(f)
}

// ClearValues deletes the contents of a range, keeping formatting.
func (t *Transport) ClearValues(ctx context.Context, rng string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	r, err := slysheets.ParseRange(rng)
	if err != nil {
		return err
	}
	f, err := excelize.OpenFile(t.config.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	toRow := r.ToRow
	if r.Open {
		rows, err := f.GetRows(r.Page)
		if err != nil {
			return fmt.Errorf("failed to read sheet %s: %w", r.Page, err)
		}
		toRow = len(rows) - 1
	}
	for i := r.FromRow; i <= toRow; i++ {
		for j := r.FromCol; j <= r.ToCol; j++ {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(r.Page, cell, nil); err != nil {
				return fmt.Errorf("failed to clear %s: %w", cell, err)
			}
		}
	}
	return t.save(f)
}

// FetchMetadata synthesizes spreadsheet metadata from the workbook:
// the file name as title, UTC as time zone, and one page per sheet.
func (t *Transport) FetchMetadata(ctx context.Context) (*slysheets.Metadata, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := filepath.Base(t.config.FilePath)
	meta := &slysheets.Metadata{
		Title:    strings.TrimSuffix(base, filepath.Ext(base)),
		TimeZone: "UTC",
	}
	f, err := excelize.OpenFile(t.config.FilePath)
	if err != nil {
		// A workbook that does not exist yet reads as a single empty
		// default sheet, matching the file the first write creates.
		if os.IsNotExist(err) {
			meta.Pages = []slysheets.PageMeta{
				{ID: 0, Title: "Sheet1", ColumnCount: 26},
			}
			return meta, nil
		}
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for i, name := range f.GetSheetList() {
		columns := int64(26)
		if rows, err := f.GetRows(name); err == nil {
			for _, row := range rows {
				if int64(len(row)) > columns {
					columns = int64(len(row))
				}
			}
		}
		meta.Pages = append(meta.Pages, slysheets.PageMeta{
			ID:          int64(i),
			Title:       name,
			ColumnCount: columns,
		})
	}
	return meta, nil
}

// openOrCreate opens the workbook, creating the file and the named
// sheet as needed.
func (t *Transport) openOrCreate(sheet string) (*excelize.File, error) {
	var f *excelize.File
	if _, err := os.Stat(t.config.FilePath); err == nil {
		f, err = excelize.OpenFile(t.config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(t.config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		f = excelize.NewFile()
	}

	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to get sheet index: %w", err)
	}
	if index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
	}
	return f, nil
}

func (t *Transport) save(f *excelize.File) error {
	if err := f.SaveAs(t.config.FilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func rowEmpty(row []slysheets.CellValue) bool {
	for _, v := range row {
		if v != nil {
			return false
		}
	}
	return true
}

// fromCellString types a formatted cell string: integers, then
// floats, then the string itself; empty cells become nil.
func fromCellString(s string) slysheets.CellValue {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
