package slysheets

// ResultKind says how a fetched region collapsed.
type ResultKind int

const (
	// ResultScalar is a 1x1 region: a bare cell value.
	ResultScalar ResultKind = iota
	// ResultRow is a single row addressed by a non-interval key.
	ResultRow
	// ResultRows is an ordered run of rows.
	ResultRows
)

// Result is the shaped outcome of fetching a resolved range: the raw
// matrix padded out to the range's declared shape, collapsed by
// dimension.
type Result struct {
	kind    ResultKind
	scalar  CellValue
	records []Record
}

// Kind reports how the result collapsed.
func (r Result) Kind() ResultKind {
	return r.kind
}

// Scalar returns the bare cell value of a 1x1 result.
func (r Result) Scalar() (CellValue, bool) {
	if r.kind != ResultScalar {
		return nil, false
	}
	return r.scalar, true
}

// Row returns the record of a ResultRow result.
func (r Result) Row() (Record, bool) {
	if r.kind != ResultRow {
		return Record{}, false
	}
	return r.records[0], true
}

// Rows returns the result's records in fetch order.
func (r Result) Rows() []Record {
	return r.records
}

// padValues fills in cells the remote store omitted: short rows are
// extended to the declared width, and missing trailing rows are added
// when the height is bounded.
func padValues(shape Shape, values [][]CellValue) [][]CellValue {
	if shape.Bounded {
		for len(values) < shape.Height {
			values = append(values, nil)
		}
	}
	for i, row := range values {
		for len(row) < shape.Width {
			row = append(row, nil)
		}
		values[i] = row
	}
	return values
}

// shapeResult pads values to rng's shape and collapses the result:
// one cell becomes a scalar, one non-interval row becomes a single
// record, anything else a run of records. A one-row result from an
// interval key stays a run, so iteration over a span is uniform.
func shapeResult(rng Range, key Key, values [][]CellValue, headers map[string]int) Result {
	shape := rng.Shape()
	values = padValues(shape, values)

	if len(values) == 1 && shape.Width == 1 {
		return Result{
			kind:    ResultScalar,
			scalar:  values[0][0],
			records: []Record{NewRecord(values[0], headers)},
		}
	}

	records := make([]Record, 0, len(values))
	for _, row := range values {
		records = append(records, NewRecord(row, headers))
	}
	if len(records) == 1 && !keyIsInterval(key) {
		return Result{kind: ResultRow, records: records}
	}
	return Result{kind: ResultRows, records: records}
}

// keyIsInterval reports whether the key's row selector was a Span.
func keyIsInterval(key Key) bool {
	switch k := key.(type) {
	case Span:
		return true
	case At:
		_, ok := k.Rows.(Span)
		return ok
	}
	return false
}
