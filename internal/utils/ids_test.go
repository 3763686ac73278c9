package utils

import (
	"errors"
	"testing"
)

func TestParsePositiveID(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0012", 12, true},
		{"9223372036854775807", 9223372036854775807, true},

		{"", 0, false},
		{"0", 0, false},
		{"000", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{" 1", 0, false},
		{"1 ", 0, false},
		{"1.5", 0, false},
		{"1e3", 0, false},
		{"0x10", 0, false},
		{"epidemic", 0, false},
		{"١٢", 0, false}, // non-ASCII digits
		{"9223372036854775808", 0, false},
		{"999999999999999999999999", 0, false},
	}

	for _, tc := range cases {
		got, err := ParsePositiveID(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParsePositiveID(%q) = %d, %v; want %d, nil", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrNotPositiveID) || got != 0 {
			t.Fatalf("ParsePositiveID(%q) = %d, %v; want 0, ErrNotPositiveID", tc.in, got, err)
		}
	}
}
