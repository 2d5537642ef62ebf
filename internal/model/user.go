package model

import "time"

// User is the authenticated principal. Authentication itself lives in an
// external identity service; this table carries the identity snapshot the
// booking flow needs (name and email for attendee issuance).
type User struct {
	ID        int       `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FullName joins first and last name for attendee snapshots.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusInactive  ProfileStatus = "inactive"
	ProfileStatusSuspended ProfileStatus = "suspended"
)

// Profile extends User with personal details that do not belong in auth.
type Profile struct {
	ID        int           `json:"id" db:"id"`
	UserID    int           `json:"user_id" db:"user_id"`
	Phone     string        `json:"phone" db:"phone"`
	Gender    string        `json:"gender" db:"gender"`
	Address   string        `json:"address" db:"address"`
	Status    ProfileStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

type UpdateProfileParams struct {
	Phone   *string
	Gender  *string
	Address *string
}
