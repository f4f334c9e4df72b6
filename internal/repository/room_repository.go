package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
)

// RoomRepo reads the meeting room catalog from the `rooms` table.
// Rooms are seeded by migration ("MR-1".."MR-3") and rarely change,
// but live in the database so facilities staff can retire or resize
// one without a deploy.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// ListActive returns every active room ordered by ID.
func (r *RoomRepo) ListActive(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, capacity, is_active, created_at, updated_at FROM rooms WHERE is_active=1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// GetByID returns an active room or ErrNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (model.Room, error) {
	var rm model.Room
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, capacity, is_active, created_at, updated_at FROM rooms WHERE id=? AND is_active=1 LIMIT 1",
		id).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrNotFound
	}
	return rm, err
}
