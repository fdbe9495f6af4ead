package slysheets_test

import (
	"testing"
	"time"

	slysheets "github.com/dunkyl/go-slysheets"
)

func TestSerialDate(t *testing.T) {
	tests := []struct {
		name   string
		serial float64
		want   time.Time
	}{
		{
			name:   "epoch",
			serial: 0,
			want:   time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "unix epoch",
			serial: 25569,
			want:   time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "fractional day is time of day",
			serial: 2.5,
			want:   time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slysheets.SerialDate(tt.serial, time.UTC)
			if !got.Equal(tt.want) {
				t.Errorf("SerialDate(%v) = %v, want %v", tt.serial, got, tt.want)
			}
		})
	}
}

func TestSerialDate_Location(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got := slysheets.SerialDate(25569, loc)
	want := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SerialDate in zone = %v, want instant %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("Location = %v, want %v", got.Location(), loc)
	}
}
