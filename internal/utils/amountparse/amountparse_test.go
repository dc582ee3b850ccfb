package amountparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		amount int64
		note   string
		ok     bool
	}{
		{"plain thousand", "+2k", 2000, "", true},
		{"uppercase suffix", "+2K", 2000, "", true},
		{"rb suffix", "+2rb", 2000, "", true},
		{"ribu suffix", "+2ribu", 2000, "", true},
		{"fractional thousand with note", "-2.5k refund", -2500, "refund", true},
		{"small fraction", "+0.3k", 300, "", true},
		{"million", "+2jt", 2_000_000, "", true},
		{"juta fractional", "-1.5juta", -1_500_000, "", true},
		{"bare integer with note", "+10000 langganan", 10000, "langganan", true},
		{"negative bare integer", "-5000", -5000, "", true},
		{"zero", "+0", 0, "", true},
		{"multi word note", "+5k netflix bulanan", 5000, "netflix bulanan", true},
		{"surrounding whitespace", "  +5k  netflix  ", 5000, "netflix", true},
		{"no sign", "2000", 0, "", false},
		{"double sign", "++5k", 0, "", false},
		{"sign only", "+", 0, "", false},
		{"whitespace only", "   ", 0, "", false},
		{"unknown suffix", "+2x", 0, "", false},
		{"suffix before digits", "+k2", 0, "", false},
		{"sign then space", "+ 5k", 0, "", false},
		{"plain text", "halo semua", 0, "", false},
		{"fraction without suffix", "+2.5", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, note, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.amount, amount)
			assert.Equal(t, tt.note, note)
		})
	}
}
