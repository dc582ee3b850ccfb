package rupiah

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp. 0"},
		{5, "Rp. 5"},
		{500, "Rp. 500"},
		{-500, "-Rp. 500"},
		{1000, "Rp. 1.000"},
		{25000, "Rp. 25.000"},
		{1234567, "Rp. 1.234.567"},
		{-1234567, "-Rp. 1.234.567"},
		{2500000000, "Rp. 2.500.000.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount))
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(time.January))
	assert.Equal(t, "Agustus", MonthName(time.August))
	assert.Equal(t, "Desember", MonthName(time.December))
}

func TestClockAndDate(t *testing.T) {
	ts := time.Date(2025, time.August, 29, 9, 5, 33, 0, time.Local)
	assert.Equal(t, "09:05", Clock(ts))
	assert.Equal(t, "29/08/2025", Date(ts))
}
