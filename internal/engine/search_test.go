package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

const (
	testStudent = "202300001"
	futureDate  = "2030-01-08"
	anotherDate = "2030-01-09"
)

func meetingReservation(id, studentID, date, roomID string, s model.TimeSlot) model.Reservation {
	return model.Reservation{
		ID:        id,
		StudentID: studentID,
		Kind:      model.FacilityMeeting,
		Date:      date,
		RoomID:    roomID,
		TimeSlots: []model.TimeSlot{s},
	}
}

func seatReservation(id, studentID, date, seatID string, slots ...model.TimeSlot) model.Reservation {
	return model.Reservation{
		ID:        id,
		StudentID: studentID,
		Kind:      model.FacilityReading,
		Date:      date,
		SeatID:    seatID,
		TimeSlots: slots,
	}
}

func TestIsSeatFree(t *testing.T) {
	snapshot := []model.Reservation{
		seatReservation("r1", "OTHER", futureDate, "SEAT-1", slot("13-15", 13, 15)),
	}

	t.Run("empty seat id is never free", func(t *testing.T) {
		assert.False(t, IsSeatFree(nil, futureDate, "", []model.TimeSlot{slot("9-11", 9, 11)}))
	})
	t.Run("empty target slots are never free", func(t *testing.T) {
		assert.False(t, IsSeatFree(nil, futureDate, "SEAT-1", nil))
	})
	t.Run("overlapping booking blocks the seat", func(t *testing.T) {
		assert.False(t, IsSeatFree(snapshot, futureDate, "SEAT-1", []model.TimeSlot{slot("14-16", 14, 16)}))
	})
	t.Run("touching booking does not block", func(t *testing.T) {
		assert.True(t, IsSeatFree(snapshot, futureDate, "SEAT-1", []model.TimeSlot{slot("15-17", 15, 17)}))
	})
	t.Run("other seat is free", func(t *testing.T) {
		assert.True(t, IsSeatFree(snapshot, futureDate, "SEAT-2", []model.TimeSlot{slot("13-15", 13, 15)}))
	})
	t.Run("other date is free", func(t *testing.T) {
		assert.True(t, IsSeatFree(snapshot, anotherDate, "SEAT-1", []model.TimeSlot{slot("13-15", 13, 15)}))
	})
	t.Run("one blocked slot blocks the pair", func(t *testing.T) {
		pair := []model.TimeSlot{slot("9-11", 9, 11), slot("14-16", 14, 16)}
		assert.False(t, IsSeatFree(snapshot, futureDate, "SEAT-1", pair))
	})
}

func TestIsRoomReserved(t *testing.T) {
	snapshot := []model.Reservation{
		meetingReservation("m1", "OTHER", futureDate, "MR-1", slot("9-10", 9, 10)),
	}

	t.Run("matches by slot id", func(t *testing.T) {
		assert.True(t, IsRoomReserved(snapshot, futureDate, "MR-1", "9-10"))
	})
	t.Run("different slot id does not match even if times overlap", func(t *testing.T) {
		// identity match only: a hypothetical wider slot covering the
		// same time is not considered reserved
		assert.False(t, IsRoomReserved(snapshot, futureDate, "MR-1", "9-11"))
	})
	t.Run("other room", func(t *testing.T) {
		assert.False(t, IsRoomReserved(snapshot, futureDate, "MR-2", "9-10"))
	})
	t.Run("other date", func(t *testing.T) {
		assert.False(t, IsRoomReserved(snapshot, anotherDate, "MR-1", "9-10"))
	})
	t.Run("reading reservations never count", func(t *testing.T) {
		reading := []model.Reservation{seatReservation("r1", "OTHER", futureDate, "SEAT-1", slot("9-10", 9, 10))}
		assert.False(t, IsRoomReserved(reading, futureDate, "MR-1", "9-10"))
	})
}

func TestFindUserConflict(t *testing.T) {
	first := meetingReservation("m1", testStudent, futureDate, "MR-1", slot("9-10", 9, 10))
	second := seatReservation("r1", testStudent, futureDate, "SEAT-1", slot("9-11", 9, 11))
	snapshot := []model.Reservation{first, second}

	t.Run("returns first match in snapshot order", func(t *testing.T) {
		got := FindUserConflict(snapshot, testStudent, futureDate, []model.TimeSlot{slot("9-10", 9, 10)})
		require.NotNil(t, got)
		assert.Equal(t, "m1", got.ID)
	})
	t.Run("cross-facility conflicts are found", func(t *testing.T) {
		got := FindUserConflict(snapshot, testStudent, futureDate, []model.TimeSlot{slot("10-11", 10, 11)})
		require.NotNil(t, got)
		assert.Equal(t, "r1", got.ID)
	})
	t.Run("no conflict on a free afternoon", func(t *testing.T) {
		assert.Nil(t, FindUserConflict(snapshot, testStudent, futureDate, []model.TimeSlot{slot("14-16", 14, 16)}))
	})
	t.Run("other students never conflict", func(t *testing.T) {
		assert.Nil(t, FindUserConflict(snapshot, "999999999", futureDate, []model.TimeSlot{slot("9-10", 9, 10)}))
	})
	t.Run("missing student id never conflicts", func(t *testing.T) {
		assert.Nil(t, FindUserConflict(snapshot, "", futureDate, []model.TimeSlot{slot("9-10", 9, 10)}))
	})
}

func TestHoursForDate(t *testing.T) {
	snapshot := []model.Reservation{
		meetingReservation("m1", testStudent, futureDate, "MR-1", slot("9-10", 9, 10)),
		meetingReservation("m2", testStudent, futureDate, "MR-2", slot("10-11", 10, 11)),
		meetingReservation("m3", testStudent, anotherDate, "MR-1", slot("9-10", 9, 10)),
		seatReservation("r1", testStudent, futureDate, "SEAT-1", slot("13-15", 13, 15)),
		meetingReservation("m4", "OTHER", futureDate, "MR-3", slot("9-10", 9, 10)),
	}

	assert.Equal(t, 2.0, HoursForDate(snapshot, testStudent, model.FacilityMeeting, futureDate))
	assert.Equal(t, 2.0, HoursForDate(snapshot, testStudent, model.FacilityReading, futureDate))
	assert.Equal(t, 1.0, HoursForDate(snapshot, testStudent, model.FacilityMeeting, anotherDate))
	assert.Equal(t, 0.0, HoursForDate(snapshot, "999999999", model.FacilityMeeting, futureDate))
}

func TestHoursForWeek(t *testing.T) {
	// 2030-01-07 (Mon) through 2030-01-13 (Sun) is one week;
	// 2030-01-14 belongs to the next.
	snapshot := []model.Reservation{
		meetingReservation("m1", testStudent, "2030-01-07", "MR-1", slot("9-10", 9, 10)),
		meetingReservation("m2", testStudent, "2030-01-09", "MR-1", slot("10-11", 10, 11)),
		meetingReservation("m3", testStudent, "2030-01-13", "MR-1", slot("11-12", 11, 12)),
		meetingReservation("m4", testStudent, "2030-01-14", "MR-1", slot("9-10", 9, 10)),
	}

	assert.Equal(t, 3.0, HoursForWeek(snapshot, testStudent, model.FacilityMeeting, "2030-01-09"))
	assert.Equal(t, 1.0, HoursForWeek(snapshot, testStudent, model.FacilityMeeting, "2030-01-14"))
	assert.Equal(t, 0.0, HoursForWeek(snapshot, testStudent, model.FacilityMeeting, "bad-date"),
		"unparsable dates sum to zero")
}
