package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/campus-facility-reservation/internal/catalog"
	"github.com/iliyamo/campus-facility-reservation/internal/engine"
	"github.com/iliyamo/campus-facility-reservation/internal/model"
	"github.com/iliyamo/campus-facility-reservation/internal/repository"
)

// FacilityHandler serves the unauthenticated browse endpoints: the
// room and seat catalogs, the slot schedules, and per-slot
// availability for a date.  These endpoints sit behind the response
// cache, so they must stay free of caller-specific data.
type FacilityHandler struct {
	Rooms        *repository.RoomRepo
	Seats        *repository.SeatRepo
	Reservations *repository.ReservationRepo
}

// NewFacilityHandler constructs a FacilityHandler; all dependencies
// must be non-nil.
func NewFacilityHandler(rooms *repository.RoomRepo, seats *repository.SeatRepo, reservations *repository.ReservationRepo) *FacilityHandler {
	if rooms == nil || seats == nil || reservations == nil {
		panic("nil repository passed to NewFacilityHandler")
	}
	return &FacilityHandler{Rooms: rooms, Seats: seats, Reservations: reservations}
}

// GetRooms handles GET /v1/rooms.
func (h *FacilityHandler) GetRooms(c echo.Context) error {
	ctx, cancel := context5s(c)
	defer cancel()

	rooms, err := h.Rooms.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// GetSeats handles GET /v1/seats.
func (h *FacilityHandler) GetSeats(c echo.Context) error {
	ctx, cancel := context5s(c)
	defer cancel()

	seats, err := h.Seats.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats})
}

// GetSlots handles GET /v1/slots?kind=MEETING|READING.
func (h *FacilityHandler) GetSlots(c echo.Context) error {
	kind, ok := parseKind(c.QueryParam("kind"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be MEETING or READING"})
	}
	return c.JSON(http.StatusOK, echo.Map{"kind": kind, "slots": catalog.SlotsFor(kind)})
}

// slotAvailability lists which facilities are still free for one slot.
type slotAvailability struct {
	Slot model.TimeSlot `json:"slot"`
	Free []string       `json:"free"` // room IDs for MEETING, seat IDs for READING
}

// GetAvailability handles GET /v1/availability?date=YYYY-MM-DD&kind=.
// For meetings it reports the rooms without a booking per slot; for
// reading it reports the seats with no overlapping booking per slot.
// The same engine primitives used for validation drive the listing, so
// what a student sees as free is exactly what would validate.
func (h *FacilityHandler) GetAvailability(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if _, ok := engine.ParseCivilDate(date); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	kind, ok := parseKind(c.QueryParam("kind"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be MEETING or READING"})
	}

	ctx, cancel := context5s(c)
	defer cancel()

	snapshot, err := h.Reservations.ListForRange(ctx, date, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	var out []slotAvailability
	switch kind {
	case model.FacilityMeeting:
		rooms, err := h.Rooms.ListActive(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		for _, slot := range catalog.MeetingSlots() {
			free := make([]string, 0, len(rooms))
			for _, room := range rooms {
				if !engine.IsRoomReserved(snapshot, date, room.ID, slot.ID) {
					free = append(free, room.ID)
				}
			}
			out = append(out, slotAvailability{Slot: slot, Free: free})
		}
	case model.FacilityReading:
		seats, err := h.Seats.ListActive(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		for _, slot := range catalog.ReadingSlots() {
			free := make([]string, 0, len(seats))
			for _, seat := range seats {
				if engine.IsSeatFree(snapshot, date, seat.ID, []model.TimeSlot{slot}) {
					free = append(free, seat.ID)
				}
			}
			out = append(out, slotAvailability{Slot: slot, Free: free})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"date": date, "kind": kind, "availability": out})
}

// parseKind normalizes the kind query parameter.  An empty value
// defaults to MEETING, matching the availability page's initial view.
func parseKind(raw string) (model.FacilityKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "MEETING":
		return model.FacilityMeeting, true
	case "READING":
		return model.FacilityReading, true
	}
	return "", false
}

// context5s wraps the request context with the standard DB timeout.
func context5s(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
