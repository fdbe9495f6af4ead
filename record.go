package slysheets

import (
	"fmt"
	"strconv"
)

// Record is a read-only view over one row of fetched values. Cells are
// addressable by ordinal position, by column letter, or by the header
// text of the row's page. It does not own the underlying sheet.
type Record struct {
	values  []CellValue
	headers map[string]int
}

// NewRecord builds a Record over values with the given header map.
// headers may be nil, in which case only positional and column-letter
// lookup work.
func NewRecord(values []CellValue, headers map[string]int) Record {
	return Record{values: values, headers: headers}
}

// Len returns the number of cells in the row.
func (r Record) Len() int {
	return len(r.values)
}

// Values returns the row's cells in order.
func (r Record) Values() []CellValue {
	return r.values
}

// At returns the cell at ordinal position i.
func (r Record) At(i int) (CellValue, error) {
	if i < 0 || i >= len(r.values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(r.values))
	}
	return r.values[i], nil
}

// Get returns the cell named by a header string or, failing that, by
// column letters. A name that resolves neither way, or letters past
// the row's width, fail with ErrUnknownColumn.
func (r Record) Get(name string) (CellValue, error) {
	if i, ok := r.headers[name]; ok {
		return r.At(i)
	}
	i, err := ColumnIndex(name)
	if err != nil || i >= len(r.values) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return r.values[i], nil
}

// StringOr returns the named cell as a string, or defaultValue if the
// cell is missing or empty.
func (r Record) StringOr(name string, defaultValue string) string {
	v, err := r.Get(name)
	if err != nil || v == nil {
		return defaultValue
	}
	switch val := v.(type) {
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Int64Or returns the named cell as an int64, or defaultValue if the
// cell is missing or not numeric.
func (r Record) Int64Or(name string, defaultValue int64) int64 {
	v, err := r.Get(name)
	if err != nil {
		return defaultValue
	}
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

// Float64Or returns the named cell as a float64, or defaultValue if
// the cell is missing or not numeric.
func (r Record) Float64Or(name string, defaultValue float64) float64 {
	v, err := r.Get(name)
	if err != nil {
		return defaultValue
	}
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
