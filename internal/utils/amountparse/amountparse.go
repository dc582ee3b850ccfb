// Package amountparse implements the shorthand grammar for signed rupiah
// amounts entered as chat text, e.g. "+5k netflix", "-2.5jt", "+10000".
package amountparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Suffix multipliers, matched in order. Thousand forms before million forms,
// bare integers last.
var (
	reThousand = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(k|rb|ribu)$`)
	reMillion  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(jt|juta)$`)
	reInteger  = regexp.MustCompile(`^\d+$`)

	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Parse extracts a signed amount and an optional trailing note from raw text.
// The text must start with '+' or '-'; anything else is simply not a
// transaction input and returns ok=false. The note is everything after the
// first whitespace run, trimmed. Fractional shorthand like "2.5k" is scaled
// exactly and truncated toward zero.
func Parse(text string) (amount int64, note string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "+") && !strings.HasPrefix(text, "-") {
		return 0, "", false
	}

	token := text
	if i := strings.IndexFunc(text, isSpace); i >= 0 {
		token = text[:i]
		note = strings.TrimSpace(text[i:])
	}

	negative := token[0] == '-'
	raw := strings.ToLower(strings.TrimSpace(token[1:]))

	var value int64
	switch {
	case reThousand.MatchString(raw):
		m := reThousand.FindStringSubmatch(raw)
		d, err := decimal.NewFromString(m[1])
		if err != nil {
			return 0, "", false
		}
		value = d.Mul(thousand).IntPart()
	case reMillion.MatchString(raw):
		m := reMillion.FindStringSubmatch(raw)
		d, err := decimal.NewFromString(m[1])
		if err != nil {
			return 0, "", false
		}
		value = d.Mul(million).IntPart()
	case reInteger.MatchString(raw):
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, "", false
		}
		value = n
	default:
		return 0, "", false
	}

	if negative {
		value = -value
	}
	return value, note, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
