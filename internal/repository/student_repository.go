package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/campus-facility-reservation/internal/model"
	"github.com/iliyamo/campus-facility-reservation/internal/utils"
)

// StudentRepo provides account lookups and creation against the
// `students` table.  Students are addressed by their 9-digit student
// number everywhere above this layer; the numeric primary key exists
// only for foreign keys such as refresh tokens.
type StudentRepo struct{ DB *sql.DB }

func NewStudentRepo(db *sql.DB) *StudentRepo { return &StudentRepo{DB: db} }

// Create inserts a student account and returns its numeric ID.  The
// password is hashed with bcrypt at the given cost before storage.
func (r *StudentRepo) Create(ctx context.Context, studentNo, name, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO students (student_no, name, password_hash) VALUES (?,?,?)",
		strings.TrimSpace(studentNo), strings.TrimSpace(name), hash)
	if err != nil {
		// 1062 = duplicate key on the unique student_no index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrStudentExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByStudentNo fetches a student by student number.
func (r *StudentRepo) GetByStudentNo(ctx context.Context, studentNo string) (model.Student, error) {
	var s model.Student
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, student_no, name, password_hash, is_active, created_at, updated_at FROM students WHERE student_no=? LIMIT 1",
		strings.TrimSpace(studentNo)).
		Scan(&s.ID, &s.StudentNo, &s.Name, &s.PasswordHash, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetByID fetches a student by numeric ID.
func (r *StudentRepo) GetByID(ctx context.Context, id uint64) (model.Student, error) {
	var s model.Student
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, student_no, name, password_hash, is_active, created_at, updated_at FROM students WHERE id=? LIMIT 1",
		id).
		Scan(&s.ID, &s.StudentNo, &s.Name, &s.PasswordHash, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
