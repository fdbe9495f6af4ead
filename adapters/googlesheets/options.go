package googlesheets

// String constants mirroring the Sheets v4 REST API enums. See
// https://developers.google.com/sheets/api/reference/rest/v4.

// ValueRenderOption selects what format cells are returned in, since
// formula and display content do not always match.
type ValueRenderOption string

const (
	RenderFormatted ValueRenderOption = "FORMATTED_VALUE"
	RenderPlain     ValueRenderOption = "UNFORMATTED_VALUE"
	RenderFormula   ValueRenderOption = "FORMULA"
)

// ValueInputOption selects whether written values are interpreted
// literally or parsed as if typed by a user.
type ValueInputOption string

const (
	InputRaw  ValueInputOption = "RAW"
	InputUser ValueInputOption = "USER_ENTERED"
)

// InsertDataOption selects whether appending inserts new rows or
// overwrites after the table.
type InsertDataOption string

const (
	InsertOverwrite InsertDataOption = "OVERWRITE"
	InsertRows      InsertDataOption = "INSERT_ROWS"
)

// MajorDimension selects whether value matrices are row-major or
// column-major.
type MajorDimension string

const (
	DimensionRows    MajorDimension = "ROWS"
	DimensionColumns MajorDimension = "COLUMNS"
)

// DateTimeRenderOption selects how date and time cells are rendered.
type DateTimeRenderOption string

const (
	RenderSerialNumber    DateTimeRenderOption = "SERIAL_NUMBER"
	RenderFormattedString DateTimeRenderOption = "FORMATTED_STRING"
)
