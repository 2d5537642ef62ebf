package model

import "time"

// Category groups events (Tech, Music, Conference, ...).
type Category struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// State is a top-level region used for event filtering.
type State struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// LGA is a local government area within a state.
type LGA struct {
	ID      int    `json:"id" db:"id"`
	StateID int    `json:"state_id" db:"state_id"`
	Name    string `json:"name" db:"name"`
}
