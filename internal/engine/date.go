package engine

import (
	"strconv"
	"strings"
	"time"
)

// ParseCivilDate parses a "YYYY-MM-DD" string into a midnight
// time.Time in the local zone.  It requires exactly three numeric
// components and reports ok=false otherwise.  It does not validate
// calendar correctness: an out-of-range day such as "2030-02-31" rolls
// over into the next month, matching how the reservation dates have
// always been interpreted.
func ParseCivilDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), true
}

// IsPastDate reports whether the date string names a day strictly
// before today in the local zone.  Unparsable strings are never past;
// callers wanting strict format validation must do it upstream.
func IsPastDate(s string) bool {
	return isPastAt(s, time.Now())
}

func isPastAt(s string, now time.Time) bool {
	target, ok := ParseCivilDate(s)
	if !ok {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return target.Before(today)
}

// WeekRange returns the Monday-start week containing d: Monday
// 00:00:00 through Sunday 23:59:59.999.  The Monday offset is computed
// as (weekday+6)%7 so that a Sunday date maps to the preceding Monday.
func WeekRange(d time.Time) (start, end time.Time) {
	offset := (int(d.Weekday()) + 6) % 7
	start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	start = start.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}
