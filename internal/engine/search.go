package engine

import "github.com/iliyamo/campus-facility-reservation/internal/model"

// The functions in this file scan the caller-supplied snapshot
// linearly.  Snapshots are small per-day working sets, so no indexing
// is done; results depend only on snapshot order where noted.

// IsSeatFree reports whether the given seat is free on the date for
// every target slot.  It returns false outright when seatID or
// targetSlots is empty, regardless of the snapshot.
func IsSeatFree(reservations []model.Reservation, date, seatID string, targetSlots []model.TimeSlot) bool {
	if seatID == "" || len(targetSlots) == 0 {
		return false
	}
	for _, target := range targetSlots {
		for _, r := range reservations {
			if r.Kind != model.FacilityReading || r.Date != date || r.SeatID != seatID {
				continue
			}
			for _, s := range r.TimeSlots {
				if SlotsOverlap(s, target) {
					return false
				}
			}
		}
	}
	return true
}

// IsRoomReserved reports whether any meeting reservation holds the
// room on the date for the slot with the given ID.  The match is by
// slot identity, not by time overlap: callers must pass the canonical
// slot ID from the schedule.
func IsRoomReserved(reservations []model.Reservation, date, roomID, slotID string) bool {
	for _, r := range reservations {
		if r.Kind != model.FacilityMeeting || r.Date != date || r.RoomID != roomID {
			continue
		}
		for _, s := range r.TimeSlots {
			if s.ID == slotID {
				return true
			}
		}
	}
	return false
}

// FindUserConflict returns the first reservation of any kind belonging
// to the student on the date whose slots overlap any of the target
// slots, or nil when there is none.  "First" means first in snapshot
// order.  A missing student ID never conflicts.
func FindUserConflict(reservations []model.Reservation, studentID, date string, targetSlots []model.TimeSlot) *model.Reservation {
	if studentID == "" {
		return nil
	}
	for i := range reservations {
		r := &reservations[i]
		if r.StudentID != studentID || r.Date != date {
			continue
		}
		for _, s := range r.TimeSlots {
			for _, target := range targetSlots {
				if SlotsOverlap(s, target) {
					return r
				}
			}
		}
	}
	return nil
}

// HoursForDate sums the student's reserved hours for the facility kind
// on exactly the given date.
func HoursForDate(reservations []model.Reservation, studentID string, kind model.FacilityKind, date string) float64 {
	var sum float64
	for _, r := range reservations {
		if r.StudentID == studentID && r.Kind == kind && r.Date == date {
			sum += reservationDurationHours(r)
		}
	}
	return sum
}

// HoursForWeek sums the student's reserved hours for the facility kind
// across the Monday-start week containing the given date.  An
// unparsable date yields zero.
func HoursForWeek(reservations []model.Reservation, studentID string, kind model.FacilityKind, date string) float64 {
	target, ok := ParseCivilDate(date)
	if !ok {
		return 0
	}
	start, end := WeekRange(target)

	var sum float64
	for _, r := range reservations {
		if r.StudentID != studentID || r.Kind != kind {
			continue
		}
		d, ok := ParseCivilDate(r.Date)
		if !ok {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			sum += reservationDurationHours(r)
		}
	}
	return sum
}
