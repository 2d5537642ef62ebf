package model

import "time"

// Organizer is a role attached to a user, not a separate login. A user
// with an organizer record can create events and request payouts.
type Organizer struct {
	ID               int       `json:"id" db:"id"`
	UserID           int       `json:"user_id" db:"user_id"`
	OrganizationName string    `json:"organization_name" db:"organization_name"`
	Email            string    `json:"email" db:"email"`
	Phone            string    `json:"phone" db:"phone"`
	Bio              string    `json:"bio" db:"bio"`
	Verified         bool      `json:"verified" db:"verified"`
	JoinedAt         time.Time `json:"joined_at" db:"joined_at"`
}

type CreateOrganizerRequest struct {
	UserID           int    `json:"user_id" binding:"required"`
	OrganizationName string `json:"organization_name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Bio              string `json:"bio"`
}

type UpdateOrganizerParams struct {
	OrganizationName *string
	Email            *string
	Phone            *string
	Bio              *string
}
