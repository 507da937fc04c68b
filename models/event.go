package models

import "time"

// Event is a scheduled popup announcement. scheduled_date is a YYYY-MM-DD
// calendar date and scheduled_time an HH:MM time of day, both stored as text.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ImageURL      string    `json:"imageUrl"`
	ScheduledDate string    `json:"scheduledDate"`
	ScheduledTime string    `json:"scheduledTime"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type EventCreate struct {
	Title         string `json:"title" validate:"required"`
	Message       string `json:"message" validate:"required"`
	ImageURL      string `json:"imageUrl"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	ScheduledTime string `json:"scheduledTime" validate:"required"`
	Active        bool   `json:"active"`
}

// EventUpdate is a sparse patch: only non-nil fields are rewritten
// (contrast with ImageUpdate's full-overwrite contract).
type EventUpdate struct {
	Title         *string `json:"title"`
	Message       *string `json:"message"`
	ImageURL      *string `json:"imageUrl"`
	ScheduledDate *string `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
	Active        *bool   `json:"active"`
}
