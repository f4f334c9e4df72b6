// Package engine decides whether a proposed meeting-room or
// reading-seat reservation may be accepted given a snapshot of the
// existing reservations.  It is a pure rule evaluator: it performs no
// I/O, never mutates the snapshot it is given, and models every rule
// violation as a rejection value rather than an error.  Persistence,
// identity and transport are collaborator concerns; in particular the
// engine gives no atomicity guarantee against concurrent writers, so
// callers must re-validate under a write lock before persisting.
package engine

import (
	"regexp"
	"strings"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

// ErrorKind identifies a business-rule violation.  Kinds are a stable
// contract clients may branch on; the message text is display copy and
// may change freely.
type ErrorKind string

const (
	KindAuthRequired      ErrorKind = "AUTH_REQUIRED"
	KindInvalidRequest    ErrorKind = "INVALID_REQUEST"
	KindPastDate          ErrorKind = "PAST_DATE"
	KindOutsideHours      ErrorKind = "OUTSIDE_HOURS"
	KindParticipantMin    ErrorKind = "PARTICIPANT_MIN"
	KindParticipantFormat ErrorKind = "PARTICIPANT_FORMAT"
	KindUserConflict      ErrorKind = "USER_CONFLICT"
	KindRoomBooked        ErrorKind = "ROOM_BOOKED"
	KindSeatBooked        ErrorKind = "SEAT_BOOKED"
	KindDailyLimit        ErrorKind = "DAILY_LIMIT"
	KindWeeklyLimit       ErrorKind = "WEEKLY_LIMIT"
	KindSlotRequired      ErrorKind = "SLOT_REQUIRED"
	KindSlotOverlap       ErrorKind = "SLOT_OVERLAP"
	KindSeatRequired      ErrorKind = "SEAT_REQUIRED"
)

// Usage limits per student.
const (
	MinParticipants         = 3 // smallest group allowed to book a meeting room
	MeetingDailyLimitHours  = 2
	MeetingWeeklyLimitHours = 5
	SeatDailyLimitHours     = 4
	maxSeatSlotsPerDay      = 2
)

// participantPattern matches a university-issued student number.
var participantPattern = regexp.MustCompile(`^\d{9}$`)

// Result is the outcome of a validation pass.  Either OK is true and
// Kind/Message are empty, or OK is false and Kind names the first rule
// that failed.  Participants carries the normalized participant list
// on meeting acceptance and is nil otherwise.  There is no partial or
// warning state.
type Result struct {
	OK           bool
	Kind         ErrorKind
	Message      string
	Participants []string
}

func accepted() Result                           { return Result{OK: true} }
func rejected(kind ErrorKind, msg string) Result { return Result{Kind: kind, Message: msg} }

// MeetingRequest is a proposed meeting-room reservation.  Slot is nil
// when the client did not select one.
type MeetingRequest struct {
	Date         string
	Slot         *model.TimeSlot
	RoomID       string
	Participants []string
}

// SeatRequest is a proposed reading-seat reservation for one or two
// slots on a single day.
type SeatRequest struct {
	Date   string
	Slots  []model.TimeSlot
	SeatID string
}

// Engine evaluates proposed reservations for one student against one
// point-in-time snapshot.  The snapshot is a borrowed read-only view;
// the engine holds no other state and an Engine value is cheap to
// construct per validation call.
type Engine struct {
	reservations []model.Reservation
	studentID    string
}

// New returns an Engine bound to the given snapshot and caller
// identity.  An empty studentID means the caller is unauthenticated.
func New(snapshot []model.Reservation, studentID string) *Engine {
	return &Engine{reservations: snapshot, studentID: studentID}
}

// ValidateMeeting runs the meeting-room rule pipeline and stops at the
// first violated rule.
func (e *Engine) ValidateMeeting(req MeetingRequest) Result {
	if e.studentID == "" {
		return rejected(KindAuthRequired, "Authentication required")
	}
	if req.Date == "" || req.Slot == nil || req.RoomID == "" {
		return rejected(KindInvalidRequest, "Missing reservation details")
	}
	if IsPastDate(req.Date) {
		return rejected(KindPastDate, "Past date reservation not allowed")
	}
	slot := *req.Slot
	if !IsWithinOperatingHours(slot) {
		return rejected(KindOutsideHours, "Outside operation hours")
	}

	participants := normalizeParticipants(req.Participants)
	if len(participants) < MinParticipants {
		return rejected(KindParticipantMin, "Minimum 3 participants required")
	}
	for _, id := range participants {
		if !participantPattern.MatchString(id) {
			return rejected(KindParticipantFormat, "Participant IDs must be 9 digits")
		}
	}

	if conflict := FindUserConflict(e.reservations, e.studentID, req.Date, []model.TimeSlot{slot}); conflict != nil {
		msg := "Another facility already reserved at this time"
		if conflict.Kind == model.FacilityMeeting {
			msg = "User already has reservation at this time"
		}
		return rejected(KindUserConflict, msg)
	}

	if IsRoomReserved(e.reservations, req.Date, req.RoomID, slot.ID) {
		return rejected(KindRoomBooked, "Meeting room already reserved")
	}

	duration := SlotDurationHours(slot)
	if HoursForDate(e.reservations, e.studentID, model.FacilityMeeting, req.Date)+duration > MeetingDailyLimitHours {
		return rejected(KindDailyLimit, "Daily meeting room limit exceeded")
	}
	if HoursForWeek(e.reservations, e.studentID, model.FacilityMeeting, req.Date)+duration > MeetingWeeklyLimitHours {
		return rejected(KindWeeklyLimit, "Weekly meeting room limit exceeded")
	}

	res := accepted()
	res.Participants = participants
	return res
}

// ValidateSeat runs the reading-seat rule pipeline and stops at the
// first violated rule.  Note the slot-count pre-check: more than two
// slots is rejected as a daily-limit violation before any hour sum is
// computed, since the standard two-hour reading slots make count and
// duration caps coincide.
func (e *Engine) ValidateSeat(req SeatRequest) Result {
	if e.studentID == "" {
		return rejected(KindAuthRequired, "Authentication required")
	}
	if req.Date == "" {
		return rejected(KindInvalidRequest, "Missing reservation date")
	}
	if len(req.Slots) == 0 {
		return rejected(KindSlotRequired, "No time slot selected")
	}
	if len(req.Slots) > maxSeatSlotsPerDay {
		return rejected(KindDailyLimit, "Maximum 4 hours per day")
	}
	if SlotsListOverlap(req.Slots) {
		return rejected(KindSlotOverlap, "Overlapping time slots")
	}
	if IsPastDate(req.Date) {
		return rejected(KindPastDate, "Past date reservation not allowed")
	}
	for _, s := range req.Slots {
		if !IsWithinOperatingHours(s) {
			return rejected(KindOutsideHours, "Outside operation hours")
		}
	}
	if req.SeatID == "" {
		return rejected(KindSeatRequired, "Seat selection required")
	}

	if !IsSeatFree(e.reservations, req.Date, req.SeatID, req.Slots) {
		return rejected(KindSeatBooked, "Seat already reserved")
	}

	if conflict := FindUserConflict(e.reservations, e.studentID, req.Date, req.Slots); conflict != nil {
		msg := "User already has reservation at this time"
		if conflict.Kind == model.FacilityMeeting {
			msg = "Another facility already reserved at this time"
		}
		return rejected(KindUserConflict, msg)
	}

	var total float64
	for _, s := range req.Slots {
		total += SlotDurationHours(s)
	}
	if HoursForDate(e.reservations, e.studentID, model.FacilityReading, req.Date)+total > SeatDailyLimitHours {
		return rejected(KindDailyLimit, "Daily seat reservation limit exceeded")
	}

	return accepted()
}

// normalizeParticipants trims every entry and drops the empty ones.
func normalizeParticipants(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
