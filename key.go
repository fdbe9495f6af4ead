package slysheets

import "fmt"

// Key addresses a rectangular region of a page. It is a closed union:
//
//	Row:  one row across the page's default column span
//	Span: a half-open run of rows, optionally with no stop
//	Str:  A1 notation, or failing that, a header name
//	At:   independent row and column selectors
type Key interface {
	isKey()
}

// Row addresses a single zero-based row.
type Row int

// Span addresses rows Start up to but not including Stop. Open ignores
// Stop and extends to the end of data. Step may be 0 or 1; anything
// else is rejected during resolution.
type Span struct {
	Start int
	Stop  int
	Step  int
	Open  bool
}

// Str addresses by string: tried first as full A1 notation, then as a
// column header name.
type Str string

// At pairs a row selector with a column selector. Rows may be a Row or a Span;
// Cols may be a Row (column index), a closed Span (column run), or a
// Str (header name, then column letters).
type At struct {
	Rows Key
	Cols Key
}

func (Row) isKey()  {}
func (Span) isKey() {}
func (Str) isKey()  {}
func (At) isKey()   {}

// KeyContext carries the defaults a Key is resolved against: the
// current page, the page's default column span, and its header map.
type KeyContext struct {
	Page    string
	FromCol int
	ToCol   int
	Headers map[string]int
}

// ResolveKey produces the single canonical Range a key addresses.
// Strings that parse as notation inherit kc.Page when the notation
// names no page; strings that do not parse are header names looked up
// in kc.Headers. A key whose resolved range still has no page fails
// with ErrUnresolvedPage.
func ResolveKey(key Key, kc KeyContext) (Range, error) {
	rng, err := resolveKey(key, kc)
	if err != nil {
		return Range{}, err
	}
	rng = rng.WithPage(kc.Page)
	if rng.Page == "" {
		return Range{}, fmt.Errorf("%w: %v", ErrUnresolvedPage, key)
	}
	return rng, nil
}

func resolveKey(key Key, kc KeyContext) (Range, error) {
	switch k := key.(type) {
	case Row:
		if k < 0 {
			return Range{}, fmt.Errorf("%w: row %d", ErrInvalidIndex, k)
		}
		return Range{
			FromRow: int(k), ToRow: int(k),
			FromCol: kc.FromCol, ToCol: kc.ToCol,
		}, nil
	case Span:
		rows, err := resolveRowSpan(k)
		if err != nil {
			return Range{}, err
		}
		rows.FromCol = kc.FromCol
		rows.ToCol = kc.ToCol
		return rows, nil
	case Str:
		if rng, err := ParseRange(string(k)); err == nil {
			return rng, nil
		}
		return resolveHeader(string(k), kc)
	case At:
		return resolveAt(k, kc)
	default:
		return Range{}, fmt.Errorf("%w: %T", ErrInvalidKey, key)
	}
}

// resolveRowSpan converts a half-open row Span to inclusive bounds.
func resolveRowSpan(k Span) (Range, error) {
	if k.Step != 0 && k.Step != 1 {
		return Range{}, fmt.Errorf("%w: %d", ErrUnsupportedStep, k.Step)
	}
	if k.Start < 0 {
		return Range{}, fmt.Errorf("%w: row %d", ErrInvalidIndex, k.Start)
	}
	if k.Open {
		return Range{FromRow: k.Start, Open: true}, nil
	}
	if k.Stop <= k.Start {
		return Range{}, fmt.Errorf("%w: empty row span [%d, %d)", ErrInvalidKey, k.Start, k.Stop)
	}
	return Range{FromRow: k.Start, ToRow: k.Stop - 1}, nil
}

// resolveHeader treats s as a header name and addresses that whole
// column, top to end of data.
func resolveHeader(s string, kc KeyContext) (Range, error) {
	if kc.Page == "" {
		return Range{}, fmt.Errorf("%w: header %q needs a page", ErrAmbiguousPage, s)
	}
	col, ok := kc.Headers[s]
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownHeader, s)
	}
	return Range{Page: kc.Page, FromCol: col, ToCol: col, Open: true}, nil
}

func resolveAt(k At, kc KeyContext) (Range, error) {
	var rng Range
	switch rows := k.Rows.(type) {
	case Row:
		if rows < 0 {
			return Range{}, fmt.Errorf("%w: row %d", ErrInvalidIndex, rows)
		}
		rng.FromRow = int(rows)
		rng.ToRow = int(rows)
	case Span:
		r, err := resolveRowSpan(rows)
		if err != nil {
			return Range{}, err
		}
		rng.FromRow = r.FromRow
		rng.ToRow = r.ToRow
		rng.Open = r.Open
	default:
		return Range{}, fmt.Errorf("%w: row selector %T", ErrInvalidKey, k.Rows)
	}

	switch cols := k.Cols.(type) {
	case Row:
		if cols < 0 {
			return Range{}, fmt.Errorf("%w: column %d", ErrInvalidIndex, cols)
		}
		rng.FromCol = int(cols)
		rng.ToCol = int(cols)
	case Span:
		if cols.Open {
			return Range{}, fmt.Errorf("%w: [%d, ...)", ErrUnsupportedOpenColumnRange, cols.Start)
		}
		if cols.Step != 0 && cols.Step != 1 {
			return Range{}, fmt.Errorf("%w: %d", ErrUnsupportedStep, cols.Step)
		}
		if cols.Start < 0 {
			return Range{}, fmt.Errorf("%w: column %d", ErrInvalidIndex, cols.Start)
		}
		if cols.Stop <= cols.Start {
			return Range{}, fmt.Errorf("%w: empty column span [%d, %d)", ErrInvalidKey, cols.Start, cols.Stop)
		}
		rng.FromCol = cols.Start
		rng.ToCol = cols.Stop - 1
	case Str:
		// Header names shadow column letters.
		if col, ok := kc.Headers[string(cols)]; ok {
			rng.FromCol = col
			rng.ToCol = col
			break
		}
		col, err := ColumnIndex(string(cols))
		if err != nil {
			return Range{}, err
		}
		rng.FromCol = col
		rng.ToCol = col
	default:
		return Range{}, fmt.Errorf("%w: column selector %T", ErrInvalidKey, k.Cols)
	}
	return rng, nil
}
