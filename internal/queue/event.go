// Package queue defines the message payloads exchanged over the
// broker and the background consumer that records them.
package queue

// ReservationConfirmedEvent is published after a reservation commits.
// It carries enough context for downstream consumers (notification,
// usage reporting) to act without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID string   `json:"reservation_id"`
	StudentID     string   `json:"student_id"`
	Kind          string   `json:"kind"` // MEETING or READING
	Date          string   `json:"date"` // civil date YYYY-MM-DD
	RoomID        string   `json:"room_id,omitempty"`
	SeatID        string   `json:"seat_id,omitempty"`
	SlotLabels    []string `json:"slots"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
