// Package catalog holds the fixed time-slot schedules for each
// facility kind.  Meeting rooms are booked in one-hour slots and
// reading seats in two-hour windows; both schedules span the
// 09:00–18:00 operating day.  Slot IDs ("9-10", "13-15") are the
// canonical identifiers persisted with reservations and matched by the
// validation engine's room check.
package catalog

import (
	"fmt"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

const (
	openHour  = 9
	closeHour = 18

	meetingSlotHours = 1
	readingSlotHours = 2
)

// buildSlots generates every slot of the given duration whose window
// fits inside the operating day.  Start hours advance one hour at a
// time, so reading slots overlap each other on purpose: a student
// picks at most two non-overlapping ones and the engine rejects
// overlapping picks.
func buildSlots(durationHours int) []model.TimeSlot {
	var slots []model.TimeSlot
	for hour := openHour; hour+durationHours <= closeHour; hour++ {
		slots = append(slots, model.TimeSlot{
			ID:           fmt.Sprintf("%d-%d", hour, hour+durationHours),
			Label:        fmt.Sprintf("%02d:00 ~ %02d:00", hour, hour+durationHours),
			StartMinutes: hour * 60,
			EndMinutes:   (hour + durationHours) * 60,
		})
	}
	return slots
}

// MeetingSlots returns the nine one-hour meeting room slots.
func MeetingSlots() []model.TimeSlot { return buildSlots(meetingSlotHours) }

// ReadingSlots returns the eight two-hour reading seat windows.
func ReadingSlots() []model.TimeSlot { return buildSlots(readingSlotHours) }

// SlotsFor returns the schedule for the given facility kind, or nil
// for an unknown kind.
func SlotsFor(kind model.FacilityKind) []model.TimeSlot {
	switch kind {
	case model.FacilityMeeting:
		return MeetingSlots()
	case model.FacilityReading:
		return ReadingSlots()
	}
	return nil
}

// SlotByID looks up a slot by its canonical ID within the schedule of
// the given facility kind.
func SlotByID(kind model.FacilityKind, id string) (model.TimeSlot, bool) {
	for _, s := range SlotsFor(kind) {
		if s.ID == id {
			return s, true
		}
	}
	return model.TimeSlot{}, false
}
