package engine

import "github.com/iliyamo/campus-facility-reservation/internal/model"

// Operating hours for every campus facility.  Slots must start no
// earlier than 09:00 and end no later than 18:00.
const (
	openingMinute = 9 * 60  // 09:00
	closingMinute = 18 * 60 // 18:00
)

// SlotsOverlap reports whether two slots share any time.  Slots are
// half-open intervals, so a slot ending exactly when another starts
// does not overlap it.
func SlotsOverlap(a, b model.TimeSlot) bool {
	return a.StartMinutes < b.EndMinutes && b.StartMinutes < a.EndMinutes
}

// SlotsListOverlap reports whether any pair of slots in the list
// overlaps.  An empty or single-element list never overlaps.
func SlotsListOverlap(slots []model.TimeSlot) bool {
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if SlotsOverlap(slots[i], slots[j]) {
				return true
			}
		}
	}
	return false
}

// SlotDurationHours returns the length of a slot in hours.  The result
// may be fractional; nothing in the rules assumes whole hours even
// though the standard schedules only produce 1- and 2-hour slots.
func SlotDurationHours(s model.TimeSlot) float64 {
	return float64(s.EndMinutes-s.StartMinutes) / 60
}

// reservationDurationHours sums the duration of every slot held by a
// reservation.
func reservationDurationHours(r model.Reservation) float64 {
	var sum float64
	for _, s := range r.TimeSlots {
		sum += SlotDurationHours(s)
	}
	return sum
}

// IsWithinOperatingHours reports whether the slot lies entirely inside
// the 09:00–18:00 operating window.
func IsWithinOperatingHours(s model.TimeSlot) bool {
	return s.StartMinutes >= openingMinute && s.EndMinutes <= closingMinute
}
