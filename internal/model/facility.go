package model

import "time"

// Room describes a bookable meeting room.  Rooms are booked one whole
// slot at a time and each booking must name at least three
// participants.
//
// Fields:
//  ID       – identifier such as "MR-1" (rooms.id).
//  Name     – display name.
//  Capacity – number of people the room holds.
//  IsActive – whether the room is currently bookable.
type Room struct {
	ID        string    `json:"id"`       // rooms.id
	Name      string    `json:"name"`     // rooms.name
	Capacity  int       `json:"capacity"` // rooms.capacity
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"-"` // rooms.created_at
	UpdatedAt time.Time `json:"-"` // rooms.updated_at
}

// Seat describes a single reading-room seat.  A student may hold at
// most four hours of seat time per day, spread over at most two slots.
//
// Fields:
//  ID       – identifier such as "SEAT-7" (seats.id).
//  Label    – display label such as "Seat 7".
//  IsActive – whether the seat is currently bookable.
type Seat struct {
	ID        string    `json:"id"`    // seats.id
	Label     string    `json:"label"` // seats.label
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"-"` // seats.created_at
	UpdatedAt time.Time `json:"-"` // seats.updated_at
}
