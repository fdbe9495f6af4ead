package slysheets

import "time"

// serialEpoch is the Lotus 1-2-3 day zero used by SERIAL_NUMBER cell
// values: 1899-12-30.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// SerialDate converts a serial day count, as stored in date cells, to
// a calendar time in the given location. Fractional days carry the
// time of day.
func SerialDate(serial float64, loc *time.Location) time.Time {
	d := time.Duration(serial * 24 * float64(time.Hour))
	return serialEpoch.In(loc).Add(d)
}
