// Package rupiah renders integer rupiah amounts and Indonesian calendar names
// for display.
package rupiah

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Format renders a signed amount as "Rp. 1.234.567", with a leading '-' for
// negative values and '.' as the thousands separator.
func Format(amount int64) string {
	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
		amount = -amount
	}
	b.WriteString("Rp. ")
	b.WriteString(group(amount))
	return b.String()
}

// group inserts '.' separators into the decimal representation of a
// non-negative amount.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// MonthName returns the Indonesian name for a month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// Clock renders a timestamp as "HH:MM" in the local calendar.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Date renders a date as "DD/MM/YYYY", matching the original report layout.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
