package leads

import "time"

// Status is the lead pipeline stage.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusBooked    Status = "booked"
	StatusClosed    Status = "closed"
)

// Source identifies where a lead came from.
type Source string

const (
	SourceWebsite   Source = "website"
	SourceReferral  Source = "referral"
	SourceSocial    Source = "social"
	SourceForm      Source = "form"
	SourceManual    Source = "manual"
	SourceImported  Source = "imported"
)

// Priority is a derived presentation-only urgency bucket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Lead mirrors the backend lead record. The Decoration fields are
// client-derived and never sent back to the server.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Source     Source    `json:"source"`
	Status     Status    `json:"status"`
	AssignedTo string    `json:"assignedTo,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`

	Decoration Decoration `json:"-"`
}

// Decoration carries the derived, non-authoritative presentation fields.
type Decoration struct {
	Priority     Priority
	DueDate      time.Time
	CommentCount int
}

// CreateRequest is the body for POST /leads.
type CreateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Source     Source `json:"source,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateRequest is the body for PATCH /leads/:id. Nil fields are omitted.
type UpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Source     *Source `json:"source,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BulkMoveResult reports the outcome of a bulk status move.
type BulkMoveResult struct {
	Success bool
	Count   int
	Err     string
}
