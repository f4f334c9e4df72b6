package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

// ReservationRepo provides snapshot loading and transactional writes
// for reservations.  A reservation row carries the facility fields and
// its time slots live in the `reservation_slots` table, one row per
// slot.  Dates are DATE columns; this layer converts them to and from
// the civil "YYYY-MM-DD" strings the validation engine works with.
type ReservationRepo struct{ db *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so handlers can open the write
// transaction that re-validates and persists in one critical section.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationCols = `r.id, r.student_no, r.kind, r.date, r.room_id, r.seat_id, r.created_at,
	s.slot_id, s.label, s.start_minutes, s.end_minutes`

const reservationJoin = `FROM reservations r
	JOIN reservation_slots s ON s.reservation_id = r.id`

// scanReservations folds the joined rows back into reservations.  Rows
// must be ordered by reservation id so slots group together; slot
// order within a reservation follows start_minutes.
func scanReservations(rows *sql.Rows) ([]model.Reservation, error) {
	var (
		out  []model.Reservation
		last *model.Reservation
	)
	for rows.Next() {
		var (
			res    model.Reservation
			date   time.Time
			roomID sql.NullString
			seatID sql.NullString
			slot   model.TimeSlot
		)
		err := rows.Scan(&res.ID, &res.StudentID, &res.Kind, &date, &roomID, &seatID, &res.CreatedAt,
			&slot.ID, &slot.Label, &slot.StartMinutes, &slot.EndMinutes)
		if err != nil {
			return nil, err
		}
		if last != nil && last.ID == res.ID {
			last.TimeSlots = append(last.TimeSlots, slot)
			continue
		}
		res.Date = date.Format("2006-01-02")
		res.RoomID = roomID.String
		res.SeatID = seatID.String
		res.TimeSlots = []model.TimeSlot{slot}
		out = append(out, res)
		last = &out[len(out)-1]
	}
	return out, rows.Err()
}

// ListForRange returns every reservation dated within [from, to]
// inclusive, in creation order.  The result is the snapshot handed to
// the validation engine; the range must cover the whole week of the
// requested date so the weekly cap sees all relevant rows.
func (r *ReservationRepo) ListForRange(ctx context.Context, from, to string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` ` + reservationJoin + `
	WHERE r.date BETWEEN ? AND ?
	ORDER BY r.created_at, r.id, s.start_minutes`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListForRangeTx is ListForRange inside a transaction with row locks.
// Taking FOR UPDATE on the reservation rows serializes concurrent
// booking attempts over the same dates: the second writer blocks here,
// then re-validates against the committed state and sees the conflict.
func (r *ReservationRepo) ListForRangeTx(ctx context.Context, tx *sql.Tx, from, to string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` ` + reservationJoin + `
	WHERE r.date BETWEEN ? AND ?
	ORDER BY r.created_at, r.id, s.start_minutes
	FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListByStudent returns a student's reservations, newest first.
func (r *ReservationRepo) ListByStudent(ctx context.Context, studentNo string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` ` + reservationJoin + `
	WHERE r.student_no = ?
	ORDER BY r.created_at DESC, r.id, s.start_minutes`
	rows, err := r.db.QueryContext(ctx, q, studentNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// CreateTx inserts a reservation and its slots within the caller's
// transaction.  The caller supplies the generated UUID and must commit
// or roll back.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	roomID := sql.NullString{String: res.RoomID, Valid: res.RoomID != ""}
	seatID := sql.NullString{String: res.SeatID, Valid: res.SeatID != ""}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO reservations (id, student_no, kind, date, room_id, seat_id) VALUES (?,?,?,?,?,?)",
		res.ID, res.StudentID, res.Kind, res.Date, roomID, seatID)
	if err != nil {
		return err
	}

	query := "INSERT INTO reservation_slots (reservation_id, slot_id, label, start_minutes, end_minutes) VALUES "
	args := make([]interface{}, 0, len(res.TimeSlots)*5)
	for i, s := range res.TimeSlots {
		if i > 0 {
			query += ","
		}
		query += "(?,?,?,?,?)"
		args = append(args, res.ID, s.ID, s.Label, s.StartMinutes, s.EndMinutes)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	// Read back the creation timestamp so the response carries it.
	return tx.QueryRowContext(ctx,
		"SELECT created_at FROM reservations WHERE id=?", res.ID).Scan(&res.CreatedAt)
}

// CancelTx deletes a reservation owned by the student.  It returns
// ErrNotFound when no such reservation exists and ErrForbidden when it
// belongs to someone else.
func (r *ReservationRepo) CancelTx(ctx context.Context, tx *sql.Tx, id, studentNo string) error {
	var owner string
	err := tx.QueryRowContext(ctx,
		"SELECT student_no FROM reservations WHERE id=? LIMIT 1 FOR UPDATE", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner != studentNo {
		return ErrForbidden
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM reservation_slots WHERE reservation_id=?", id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	return err
}
