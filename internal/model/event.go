package model

import "time"

// EventStatus lifecycle of an event
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// IsValid reports whether the status is a known value.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusActive, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Event is created and owned by an organizer.
type Event struct {
	ID          int         `json:"id" db:"id"`
	OrganizerID int         `json:"organizer_id" db:"organizer_id"`
	CategoryID  *int        `json:"category_id,omitempty" db:"category_id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Date        time.Time   `json:"date" db:"date"`
	Venue       string      `json:"venue" db:"venue"`
	StateID     *int        `json:"state_id,omitempty" db:"state_id"`
	LgaID       *int        `json:"lga_id,omitempty" db:"lga_id"`
	ImageURL    string      `json:"image_url" db:"image_url"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`

	Tickets []*Ticket `json:"tickets,omitempty" db:"-"`
}

// CreateEventRequest payload for organizer event creation
type CreateEventRequest struct {
	OrganizerID int       `json:"organizer_id" binding:"required"`
	CategoryID  *int      `json:"category_id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Venue       string    `json:"venue" binding:"required"`
	StateID     *int      `json:"state_id"`
	LgaID       *int      `json:"lga_id"`
	ImageURL    string    `json:"image_url"`
}

type UpdateEventParams struct {
	CategoryID  *int
	Title       *string
	Description *string
	Date        *time.Time
	Venue       *string
	StateID     *int
	LgaID       *int
	ImageURL    *string
	Status      *EventStatus
}

// EventFilter narrows event listings for the public catalog.
type EventFilter struct {
	CategoryID *int `form:"category_id"`
	StateID    *int `form:"state_id"`
	Upcoming   bool `form:"upcoming"`
}
