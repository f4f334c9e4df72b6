package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

// SeatRepo reads the reading-room seat catalog from the `seats` table
// ("SEAT-1".."SEAT-15", seeded by migration).
type SeatRepo struct{ DB *sql.DB }

func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{DB: db} }

// ListActive returns every active seat ordered by ID.
func (r *SeatRepo) ListActive(ctx context.Context) ([]model.Seat, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, label, is_active, created_at, updated_at FROM seats WHERE is_active=1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.Label, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// GetByID returns an active seat or ErrNotFound.
func (r *SeatRepo) GetByID(ctx context.Context, id string) (model.Seat, error) {
	var s model.Seat
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, label, is_active, created_at, updated_at FROM seats WHERE id=? AND is_active=1 LIMIT 1",
		id).Scan(&s.ID, &s.Label, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Seat{}, ErrNotFound
	}
	return s, err
}
