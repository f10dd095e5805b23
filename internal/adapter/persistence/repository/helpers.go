package repository

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// cell returns the i-th cell of a row, tolerating rows shorter than the
// column contract.
func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// parseNumeric converts whatever a monetary cell holds into a float64.
//
// The sheet mixes plain numbers, currency-formatted strings ("R$ 1.234,56")
// and garbage. Anything unparsable becomes 0 so a single bad cell never
// aborts a read. Both Brazilian (1.234,56) and plain (1234.56) notations are
// accepted; decimal does the actual conversion to dodge float parsing quirks.
func parseNumeric(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ",") {
		// Comma is the decimal separator; any dots are thousands marks.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// parseLooseInt extracts a leading integer from a cell ("7", " 7 ", "7a"),
// reporting false when the cell holds no leading digits at all.
func parseLooseInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// matchesID compares an id cell against the wanted id, numerically when the
// cell parses and by exact string otherwise, so "7" and 7 refer to the same
// order no matter how the sheet stored the value.
func matchesID(raw string, id int) bool {
	if n, ok := parseLooseInt(raw); ok {
		return n == id
	}
	return strings.TrimSpace(raw) == strconv.Itoa(id)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
