package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1234, false}, // rounds down
		{"12.346", 1235, false}, // rounds up
		{"45", 4500, false},
		{"0.01", 1, false},
		{"$45.00", 4500, false},
		{"1,234.56", 123456, false}, // thousands separator
		{"1,200", 120000, false},    // thousands without decimals
		{"12,345", 1234500, false},
		{"  7.5 ", 750, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"12x", 0, true},
	}
	for i, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("case %d (%q): expected error, got %d", i, tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("case %d (%q): unexpected error %v", i, tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("case %d (%q): got %d, want %d", i, tc.in, got, tc.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{4500, "$45.00"},
		{1, "$0.01"},
		{123456, "$1234.56"},
		{0, "$0.00"},
		{-250, "-$2.50"},
	}
	for i, tc := range cases {
		if got := (Money{Cents: tc.cents}).Format(); got != tc.want {
			t.Fatalf("case %d: Format(%d) = %q, want %q", i, tc.cents, got, tc.want)
		}
	}
}

func TestMoneyDollars(t *testing.T) {
	if got := (Money{Cents: 4500}).Dollars(); got != 45.0 {
		t.Fatalf("Dollars() = %v, want 45.0", got)
	}
}
