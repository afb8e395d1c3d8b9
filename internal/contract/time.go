package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRelativeTime parses a relative expression of the form
// "N units ago" (e.g. "3 months ago", "10 DAYS AGO") against the given
// reference time. Supported units are day, week, month and year, with
// optional plural forms, case-insensitive. Months and years use calendar
// arithmetic rather than fixed-length approximations.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) != 3 || fields[2] != "ago" {
		return time.Time{}, fmt.Errorf("expected format 'N [days|weeks|months|years] ago', got %q", s)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("invalid numeric value %q in relative time", fields[0])
	}

	switch strings.TrimSuffix(fields[1], "s") {
	case "day":
		return now.Add(-time.Duration(n) * 24 * time.Hour), nil
	case "week":
		return now.Add(-time.Duration(n) * 7 * 24 * time.Hour), nil
	case "month":
		return now.AddDate(0, -n, 0), nil
	case "year":
		return now.AddDate(-n, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time unit %q. Use days, weeks, months or years", fields[1])
	}
}
