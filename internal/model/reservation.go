package model

import "time"

// FacilityKind distinguishes the two bookable facility types on campus.
// MEETING covers the meeting rooms (whole-slot bookings with a
// participant list) and READING covers the reading-room seats (up to
// two slots per day).
type FacilityKind string

const (
	FacilityMeeting FacilityKind = "MEETING" // meeting room reservation
	FacilityReading FacilityKind = "READING" // reading seat reservation
)

// TimeSlot is a half-open interval [StartMinutes, EndMinutes) measured
// in minutes since midnight.  Slots carry an opaque identifier such as
// "9-10" and a display label such as "09:00 ~ 10:00".  The label is for
// presentation only and never drives any rule.  A TimeSlot is a value
// and is never modified after construction.
//
// Fields:
//  ID           – opaque slot identifier (reservation_slots.slot_id).
//  Label        – display text (reservation_slots.label).
//  StartMinutes – inclusive start, minutes since midnight.
//  EndMinutes   – exclusive end, minutes since midnight.
type TimeSlot struct {
	ID           string `json:"id"`            // reservation_slots.slot_id
	Label        string `json:"label"`         // reservation_slots.label
	StartMinutes int    `json:"start_minutes"` // reservation_slots.start_minutes
	EndMinutes   int    `json:"end_minutes"`   // reservation_slots.end_minutes
}

// Reservation records a persisted booking for either facility kind.
// The date is stored as the civil "YYYY-MM-DD" string supplied by the
// client; same-day rules compare it by string equality, weekly rules
// parse it.  RoomID is set only for MEETING reservations and SeatID
// only for READING reservations.  Within one reservation the time
// slots never overlap each other; that is guaranteed before the
// reservation is created.
//
// Fields:
//  ID        – UUID primary key.
//  StudentID – 9-digit student number owning the booking.
//  Kind      – MEETING or READING.
//  Date      – civil date string "YYYY-MM-DD".
//  RoomID    – meeting room identifier (empty for READING).
//  SeatID    – reading seat identifier (empty for MEETING).
//  TimeSlots – one slot for MEETING, one or two for READING.
//  CreatedAt – creation timestamp.
type Reservation struct {
	ID        string       `json:"id"`                // reservations.id
	StudentID string       `json:"student_id"`        // reservations.student_id
	Kind      FacilityKind `json:"kind"`              // reservations.kind
	Date      string       `json:"date"`              // reservations.date
	RoomID    string       `json:"room_id,omitempty"` // reservations.room_id (nullable)
	SeatID    string       `json:"seat_id,omitempty"` // reservations.seat_id (nullable)
	TimeSlots []TimeSlot   `json:"time_slots"`        // reservation_slots rows
	CreatedAt time.Time    `json:"created_at"`        // reservations.created_at
}
