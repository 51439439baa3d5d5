package bookings

import "time"

// Status is the booking lifecycle state owned by the backend.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// Booking mirrors the backend booking record.
type Booking struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail,omitempty"`
	ClientPhone     string    `json:"clientPhone,omitempty"`
	Service         string    `json:"service,omitempty"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	Status          Status    `json:"status"`
	AssignedTo      string    `json:"assignedTo,omitempty"`
	ContactID       string    `json:"contactId,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// CreateRequest is the body for POST /bookings.
type CreateRequest struct {
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail,omitempty"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	Service         string `json:"service,omitempty"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	AssignedTo      string `json:"assignedTo,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// UpdateRequest is the body for PATCH /bookings/:id. Nil fields are omitted.
type UpdateRequest struct {
	ClientName      *string `json:"clientName,omitempty"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	Service         *string `json:"service,omitempty"`
	Date            *string `json:"date,omitempty"`
	TimeSlot        *string `json:"timeSlot,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	AssignedTo      *string `json:"assignedTo,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
