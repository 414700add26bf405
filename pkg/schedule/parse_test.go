package schedule

import "testing"

func TestParseStartMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00 AM - 10:00 AM", 9 * 60},
		{"02:30 PM - 03:00 PM", 14*60 + 30},
		{"12:00 PM - 01:00 PM", 12 * 60},
		{"12:15 AM - 01:00 AM", 15},
		{"9:05 AM", 9*60 + 5},
		{"09:00 - 10:00", 9 * 60},
		{"", 0},
		{"garbage", 0},
		{" - 10:00 AM", 0},
	}
	for _, tc := range cases {
		if got := ParseStartMinutes(tc.in); got != tc.want {
			t.Fatalf("ParseStartMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRangeHours(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00 AM - 11:00 AM", 2},
		{"09:00 - 10:00", 1},
		{"23:00 - 01:00", 2}, // wraps past midnight
		{"no range here", 0},
		{"a - b", 0},
	}
	for _, tc := range cases {
		if got := rangeHours(tc.in); got != tc.want {
			t.Fatalf("rangeHours(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
