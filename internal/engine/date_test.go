package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, ok := ParseCivilDate("2030-01-09")
		require.True(t, ok)
		assert.Equal(t, 2030, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 9, d.Day())
		assert.Equal(t, 0, d.Hour())
	})

	t.Run("malformed strings", func(t *testing.T) {
		for _, s := range []string{"", "2030", "2030-01", "2030-xx-09", "2030-01-09-01", "not-a-date"} {
			_, ok := ParseCivilDate(s)
			assert.False(t, ok, "expected %q to be invalid", s)
		}
	})

	t.Run("day overflow rolls over", func(t *testing.T) {
		// 2030-02-31 is not rejected; it normalizes to March 3rd, the
		// same way the bookings have always been interpreted.
		d, ok := ParseCivilDate("2030-02-31")
		require.True(t, ok)
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 3, d.Day())
	})
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2030, time.January, 9, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"yesterday", "2030-01-08", true},
		{"today", "2030-01-09", false},
		{"tomorrow", "2030-01-10", false},
		{"far past", "2000-01-01", true},
		{"invalid is never past", "garbage", false},
		{"empty is never past", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPastAt(tt.date, now))
		})
	}
}

func TestWeekRange(t *testing.T) {
	t.Run("wednesday maps to surrounding week", func(t *testing.T) {
		d, ok := ParseCivilDate("2030-01-09") // a Wednesday
		require.True(t, ok)
		start, end := WeekRange(d)

		assert.Equal(t, time.Monday, start.Weekday())
		assert.Equal(t, time.Sunday, end.Weekday())
		assert.Equal(t, 7, start.Day())  // Monday 2030-01-07
		assert.Equal(t, 13, end.Day())   // Sunday 2030-01-13
		assert.False(t, d.Before(start)) // input lies within the range
		assert.False(t, d.After(end))
	})

	t.Run("sunday maps to the preceding monday", func(t *testing.T) {
		d, ok := ParseCivilDate("2030-01-13")
		require.True(t, ok)
		start, _ := WeekRange(d)
		assert.Equal(t, time.Monday, start.Weekday())
		assert.Equal(t, 7, start.Day())
	})

	t.Run("monday is its own week start", func(t *testing.T) {
		d, ok := ParseCivilDate("2030-01-07")
		require.True(t, ok)
		start, end := WeekRange(d)
		assert.Equal(t, d, start)
		assert.True(t, end.After(start))
	})
}
