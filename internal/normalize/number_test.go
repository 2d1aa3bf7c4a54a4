package normalize

import (
	"math"
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"94", 94},
		{"94%", 94},
		{"94,0%", 94},
		{" 72,5 ", 72.5},
		{"500 ml", 500},
		{"1.200", 1.2},
		{"1.200,5", 1200.5},
		{"1.234.567,25", 1234567.25},
		{"-5", -5},
		{"37.0", 37},
		{".5", 0.5},
	}
	for _, tc := range cases {
		got := ParseNumber(tc.in)
		if got == nil {
			t.Errorf("ParseNumber(%q): got nil, want %v", tc.in, tc.want)
			continue
		}
		if math.Abs(*got-tc.want) > 1e-9 {
			t.Errorf("ParseNumber(%q): got %v, want %v", tc.in, *got, tc.want)
		}
	}
}

func TestParseNumber_Absent(t *testing.T) {
	for _, in := range []string{"", "   ", "%", "ml", "abc", "-", "1,2,3", "--5", "..", strings.Repeat("9", 400)} {
		if got := ParseNumber(in); got != nil {
			t.Errorf("ParseNumber(%q): got %v, want nil", in, *got)
		}
	}
}

func TestParseNumber_CommaThenDotLocale(t *testing.T) {
	// "1,200.5" follows the other convention; the dot is dropped as a
	// thousands separator and the comma becomes decimal.
	got := ParseNumber("1,200.5")
	if got == nil || math.Abs(*got-1.2005) > 1e-9 {
		t.Errorf("ParseNumber(1,200.5): got %v, want 1.2005", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("below: got %v", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("above: got %v", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("inside: got %v", got)
	}
}
