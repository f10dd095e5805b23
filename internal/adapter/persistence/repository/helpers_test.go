package repository

import "testing"

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"10,50", 10.5},
		{"-5", -5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"a definir", 0},
		{"  42  ", 42},
	}

	for _, tc := range cases {
		if got := parseNumeric(tc.in); got != tc.want {
			t.Fatalf("parseNumeric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseLooseInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"7", 7, true},
		{"  7  ", 7, true},
		{"7a", 7, true},
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseLooseInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLooseInt(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchesID(t *testing.T) {
	cases := []struct {
		raw  string
		id   int
		want bool
	}{
		{"7", 7, true},
		{" 7 ", 7, true},
		{"7", 8, false},
		{"07a", 7, true},
		{"", 7, false},
		{"abc", 7, false},
	}

	for _, tc := range cases {
		if got := matchesID(tc.raw, tc.id); got != tc.want {
			t.Fatalf("matchesID(%q, %d) = %v, want %v", tc.raw, tc.id, got, tc.want)
		}
	}
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	if got := cell(row, 1); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := cell(row, 5); got != "" {
		t.Fatalf("expected empty cell past the row end, got %q", got)
	}
	if got := cell(row, -1); got != "" {
		t.Fatalf("expected empty cell for negative index, got %q", got)
	}
}

func TestFloatToString(t *testing.T) {
	if got := floatToString(1234.56); got != "1234.56" {
		t.Fatalf("expected 1234.56, got %q", got)
	}
	if got := floatToString(-100); got != "-100" {
		t.Fatalf("expected -100, got %q", got)
	}
}
