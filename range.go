package slysheets

import (
	"fmt"
	"regexp"
)

// a1Pattern matches A1 notation: an optional quoted page name, a start
// column with optional row, and an optional end column with optional row.
// Examples: 'Sheet 1'!A1:B2, A:B, C3.
var a1Pattern = regexp.MustCompile(
	`^(?:'(?P<page>\w(?:[\w\s]*\w)?)'!)?` +
		`(?P<startCol>[A-Za-z]{1,2})(?P<startRow>[1-9][0-9]*)?` +
		`(?::(?P<endCol>[A-Za-z]{1,2})(?P<endRow>[1-9][0-9]*)?)?$`)

// Range is a page-qualified rectangular cell region with zero-based,
// inclusive integer bounds. Open marks a range with no bottom row
// ("to the end of data"); ToRow is meaningless while Open is set.
// An empty Page means the page has not been resolved yet.
type Range struct {
	Page    string
	FromRow int
	ToRow   int
	FromCol int
	ToCol   int
	Open    bool
}

// Shape is the cell extent of a Range. Height is only meaningful when
// Bounded is true; an open-bottomed range has unbounded height.
type Shape struct {
	Width   int
	Height  int
	Bounded bool
}

// ParseRange parses A1 notation into a Range. The page is left empty
// when the notation does not carry one.
func ParseRange(a1 string) (Range, error) {
	m := a1Pattern.FindStringSubmatch(a1)
	if m == nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidNotation, a1)
	}
	page := m[a1Pattern.SubexpIndex("page")]
	startCol := m[a1Pattern.SubexpIndex("startCol")]
	startRow := m[a1Pattern.SubexpIndex("startRow")]
	endCol := m[a1Pattern.SubexpIndex("endCol")]
	endRow := m[a1Pattern.SubexpIndex("endRow")]

	var rng Range
	rng.Page = page
	if startRow != "" {
		rng.FromRow = atoi(startRow) - 1
	}
	if endCol != "" {
		if endRow != "" {
			rng.ToRow = atoi(endRow) - 1
		} else {
			rng.Open = true
		}
	} else {
		rng.ToRow = rng.FromRow
	}
	rng.FromCol, _ = ColumnIndex(startCol)
	if endCol != "" {
		rng.ToCol, _ = ColumnIndex(endCol)
	} else {
		rng.ToCol = rng.FromCol
	}
	return rng, nil
}

// atoi converts a digit string already validated by a1Pattern.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// WithPage returns a copy of r with the page set to p when r has none.
func (r Range) WithPage(p string) Range {
	if r.Page == "" {
		r.Page = p
	}
	return r
}

// String renders the canonical A1 form. Single cells, whole column
// ranges, open-bottomed ranges and fully bounded ranges each have a
// distinct shape; parsing the result yields an equal Range.
func (r Range) String() string {
	s := ""
	if r.Page != "" {
		s = "'" + r.Page + "'!"
	}
	from := colLetters(r.FromCol)
	to := colLetters(r.ToCol)
	switch {
	case !r.Open && r.ToCol == r.FromCol && r.ToRow == r.FromRow:
		return fmt.Sprintf("%s%s%d", s, from, r.FromRow+1)
	case r.Open && r.FromRow == 0:
		return fmt.Sprintf("%s%s:%s", s, from, to)
	case r.Open:
		return fmt.Sprintf("%s%s%d:%s", s, from, r.FromRow+1, to)
	default:
		return fmt.Sprintf("%s%s%d:%s%d", s, from, r.FromRow+1, to, r.ToRow+1)
	}
}

// Shape reports the width and height of the range.
func (r Range) Shape() Shape {
	w := r.ToCol - r.FromCol + 1
	if r.Open {
		return Shape{Width: w}
	}
	return Shape{Width: w, Height: r.ToRow - r.FromRow + 1, Bounded: true}
}

// colLetters is ColumnLetters for indices already known to be
// non-negative.
func colLetters(index int) string {
	var buf []byte
	for index > -1 {
		buf = append(buf, alphabet[index%26])
		index = index/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
