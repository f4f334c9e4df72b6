package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/campus-facility-reservation/internal/engine"
)

func TestStatusForKind(t *testing.T) {
	cases := []struct {
		kind engine.ErrorKind
		want int
	}{
		{engine.KindAuthRequired, http.StatusUnauthorized},
		{engine.KindInvalidRequest, http.StatusBadRequest},
		{engine.KindPastDate, http.StatusBadRequest},
		{engine.KindOutsideHours, http.StatusBadRequest},
		{engine.KindParticipantMin, http.StatusBadRequest},
		{engine.KindParticipantFormat, http.StatusBadRequest},
		{engine.KindSlotRequired, http.StatusBadRequest},
		{engine.KindSlotOverlap, http.StatusBadRequest},
		{engine.KindSeatRequired, http.StatusBadRequest},
		{engine.KindUserConflict, http.StatusConflict},
		{engine.KindRoomBooked, http.StatusConflict},
		{engine.KindSeatBooked, http.StatusConflict},
		{engine.KindDailyLimit, http.StatusConflict},
		{engine.KindWeeklyLimit, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.want, statusForKind(tc.kind))
		})
	}
}

func TestSnapshotRangeCoversWholeWeek(t *testing.T) {
	// 2030-01-09 is a Wednesday; the snapshot window must span the
	// Monday-start week so weekly sums see every relevant row.
	from, to, ok := snapshotRange("2030-01-09")
	require.True(t, ok)
	assert.Equal(t, "2030-01-07", from)
	assert.Equal(t, "2030-01-13", to)
}

func TestSnapshotRangeRejectsMalformedDate(t *testing.T) {
	for _, raw := range []string{"", "2030/01/09", "2030-01", "not-a-date"} {
		_, _, ok := snapshotRange(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}
