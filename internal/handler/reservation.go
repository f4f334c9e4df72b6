package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/campus-facility-reservation/internal/catalog"
	"github.com/iliyamo/campus-facility-reservation/internal/engine"
	"github.com/iliyamo/campus-facility-reservation/internal/model"
	"github.com/iliyamo/campus-facility-reservation/internal/queue"
	"github.com/iliyamo/campus-facility-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/campus-facility-reservation/internal/service"
)

// ReservationHandler serves the booking endpoints.  Each create
// handler runs the validation engine twice: once against a plain
// snapshot to give fast feedback, then again inside a transaction
// whose snapshot query takes row locks, so two students cannot pass
// validation against the same stale state and double-book.  The
// engine itself is pure and knows nothing about this serialization.
type ReservationHandler struct {
	Rooms        *repository.RoomRepo
	Seats        *repository.SeatRepo
	Reservations *repository.ReservationRepo
}

// NewReservationHandler constructs a ReservationHandler; all
// dependencies must be non-nil.
func NewReservationHandler(rooms *repository.RoomRepo, seats *repository.SeatRepo, reservations *repository.ReservationRepo) *ReservationHandler {
	if rooms == nil || seats == nil || reservations == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Rooms: rooms, Seats: seats, Reservations: reservations}
}

// ----- DTOs -----

type meetingCreateReq struct {
	Date         string   `json:"date"`
	SlotID       string   `json:"slot_id"`
	RoomID       string   `json:"room_id"`
	Participants []string `json:"participants"`
}

type seatCreateReq struct {
	Date    string   `json:"date"`
	SlotIDs []string `json:"slot_ids"`
	SeatID  string   `json:"seat_id"`
}

// statusForKind maps an engine rejection onto an HTTP status.  Rule
// kinds describing a malformed or incomplete request map to 400;
// kinds describing a clash with existing bookings or usage caps map
// to 409.
func statusForKind(kind engine.ErrorKind) int {
	switch kind {
	case engine.KindAuthRequired:
		return http.StatusUnauthorized
	case engine.KindUserConflict, engine.KindRoomBooked, engine.KindSeatBooked,
		engine.KindDailyLimit, engine.KindWeeklyLimit:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func rejectResult(c echo.Context, res engine.Result) error {
	return c.JSON(statusForKind(res.Kind), echo.Map{
		"error_kind": res.Kind,
		"message":    res.Message,
	})
}

// snapshotRange returns the date bounds whose reservations can affect
// validation of a request on the given date: the whole Monday-start
// week, which covers the weekly cap as well as every same-day rule.
func snapshotRange(date string) (from, to string, ok bool) {
	d, ok := engine.ParseCivilDate(date)
	if !ok {
		return "", "", false
	}
	start, end := engine.WeekRange(d)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), true
}

// publishConfirmed fires the confirmation event without blocking the
// response; a broker outage must not fail a committed booking.
func publishConfirmed(res model.Reservation) {
	labels := make([]string, 0, len(res.TimeSlots))
	for _, s := range res.TimeSlots {
		labels = append(labels, s.Label)
	}
	ev := queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		StudentID:     res.StudentID,
		Kind:          string(res.Kind),
		Date:          res.Date,
		RoomID:        res.RoomID,
		SeatID:        res.SeatID,
		SlotLabels:    labels,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationConfirmed(ctx, ev)
	}()
}

// CreateMeeting handles POST /v1/reservations/meeting.
func (h *ReservationHandler) CreateMeeting(c echo.Context) error {
	studentNo, err := getStudentID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req meetingCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	from, to, ok := snapshotRange(req.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	slot, ok := catalog.SlotByID(model.FacilityMeeting, req.SlotID)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown time slot"})
	}

	ctx, cancel := context5s(c)
	defer cancel()

	if _, err := h.Rooms.GetByID(ctx, req.RoomID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	engineReq := engine.MeetingRequest{
		Date:         req.Date,
		Slot:         &slot,
		RoomID:       req.RoomID,
		Participants: req.Participants,
	}

	// First pass without locks for fast feedback.
	snapshot, err := h.Reservations.ListForRange(ctx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if res := engine.New(snapshot, studentNo).ValidateMeeting(engineReq); !res.OK {
		return rejectResult(c, res)
	}

	// Second pass under row locks, then persist in the same transaction.
	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	locked, err := h.Reservations.ListForRangeTx(ctx, tx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	res := engine.New(locked, studentNo).ValidateMeeting(engineReq)
	if !res.OK {
		return rejectResult(c, res)
	}

	created := model.Reservation{
		ID:        uuid.NewString(),
		StudentID: studentNo,
		Kind:      model.FacilityMeeting,
		Date:      req.Date,
		RoomID:    req.RoomID,
		TimeSlots: []model.TimeSlot{slot},
	}
	if err := h.Reservations.CreateTx(ctx, tx, &created); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	publishConfirmed(created)
	return c.JSON(http.StatusCreated, echo.Map{
		"reservation":  created,
		"participants": res.Participants,
	})
}

// CreateSeat handles POST /v1/reservations/seat.
func (h *ReservationHandler) CreateSeat(c echo.Context) error {
	studentNo, err := getStudentID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req seatCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	from, to, ok := snapshotRange(req.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	slots := make([]model.TimeSlot, 0, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		s, ok := catalog.SlotByID(model.FacilityReading, id)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown time slot"})
		}
		slots = append(slots, s)
	}

	ctx, cancel := context5s(c)
	defer cancel()

	// Seat existence is checked only when one was named; a missing
	// seat selection is the engine's SEAT_REQUIRED rule.
	if req.SeatID != "" {
		if _, err := h.Seats.GetByID(ctx, req.SeatID); err != nil {
			if err == repository.ErrNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	engineReq := engine.SeatRequest{Date: req.Date, Slots: slots, SeatID: req.SeatID}

	snapshot, err := h.Reservations.ListForRange(ctx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if res := engine.New(snapshot, studentNo).ValidateSeat(engineReq); !res.OK {
		return rejectResult(c, res)
	}

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	locked, err := h.Reservations.ListForRangeTx(ctx, tx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if res := engine.New(locked, studentNo).ValidateSeat(engineReq); !res.OK {
		return rejectResult(c, res)
	}

	created := model.Reservation{
		ID:        uuid.NewString(),
		StudentID: studentNo,
		Kind:      model.FacilityReading,
		Date:      req.Date,
		SeatID:    req.SeatID,
		TimeSlots: slots,
	}
	if err := h.Reservations.CreateTx(ctx, tx, &created); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	publishConfirmed(created)
	return c.JSON(http.StatusCreated, echo.Map{"reservation": created})
}

// ListMine handles GET /v1/reservations and returns the caller's
// reservations, newest first.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	studentNo, err := getStudentID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context5s(c)
	defer cancel()

	list, err := h.Reservations.ListByStudent(ctx, studentNo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if list == nil {
		list = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": list})
}

// Cancel handles DELETE /v1/reservations/:id.  Students may cancel
// only their own reservations.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	studentNo, err := getStudentID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	ctx, cancel := context5s(c)
	defer cancel()

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Reservations.CancelTx(ctx, tx, id, studentNo); err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your reservation"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.NoContent(http.StatusNoContent)
}
