package model

import "time"

// Student represents an account in the `students` table.  Students are
// identified by their university-issued 9-digit number, which is also
// the identity the validation engine sees.  The numeric ID is internal
// to the database and referenced by refresh tokens.
//
// Fields:
//  ID           – primary key identifier.
//  StudentNo    – unique 9-digit student number.
//  Name         – display name.
//  PasswordHash – bcrypt hashed password.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Student struct {
	ID           uint64    // students.id
	StudentNo    string    // students.student_no
	Name         string    // students.name
	PasswordHash string    // students.password_hash
	IsActive     bool      // students.is_active
	CreatedAt    time.Time // students.created_at
	UpdatedAt    time.Time // students.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// token belongs to a student and only the SHA-256 hash of the raw
// value is stored.
//
// Fields:
//  ID        – primary key identifier.
//  StudentID – owner of the token (students.id).
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	StudentID uint64     // refresh_tokens.student_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
