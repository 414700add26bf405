package schedule

import (
	"strconv"
	"strings"
)

// ParseStartMinutes converts the start of a time range like
// "09:30 AM - 10:00 AM" into minutes since midnight. PM adds 12 hours
// (except 12 PM), 12 AM is midnight. Malformed strings parse to 0 so they
// sort first instead of failing.
func ParseStartMinutes(timeRange string) int {
	start := strings.TrimSpace(strings.SplitN(timeRange, "-", 2)[0])
	fields := strings.Fields(start)
	if len(fields) == 0 {
		return 0
	}
	clock := strings.SplitN(fields[0], ":", 2)
	hours, err := strconv.Atoi(clock[0])
	if err != nil {
		return 0
	}
	minutes := 0
	if len(clock) == 2 {
		if m, err := strconv.Atoi(clock[1]); err == nil {
			minutes = m
		}
	}
	if len(fields) > 1 {
		switch strings.ToUpper(fields[1]) {
		case "PM":
			if hours < 12 {
				hours += 12
			}
		case "AM":
			if hours == 12 {
				hours = 0
			}
		}
	}
	return hours*60 + minutes
}

// rangeHours returns the whole-hour difference between the two sides of a
// time range, reading only the hour digits of each side. A negative
// difference wraps past midnight by adding 24. Returns 0 when the string is
// not a two-sided range.
func rangeHours(timeRange string) int {
	parts := strings.SplitN(timeRange, "-", 2)
	if len(parts) != 2 {
		return 0
	}
	startHour, okStart := leadingHour(parts[0])
	endHour, okEnd := leadingHour(parts[1])
	if !okStart || !okEnd {
		return 0
	}
	diff := endHour - startHour
	if diff < 0 {
		diff += 24
	}
	return diff
}

func leadingHour(side string) (int, bool) {
	side = strings.TrimSpace(side)
	head := strings.SplitN(side, ":", 2)[0]
	head = strings.TrimSpace(strings.SplitN(head, " ", 2)[0])
	hour, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return hour, true
}
