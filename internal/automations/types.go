package automations

import "time"

// Type tags an automation with the behavior it runs.
type Type string

const (
	TypeBookingReminder Type = "booking_reminder"
	TypeLeadFollowUp    Type = "lead_follow_up"
	TypeReviewRequest   Type = "review_request"
	TypeLowStockAlert   Type = "low_stock_alert"
	TypeWelcomeMessage  Type = "welcome_message"
)

// Descriptor is the presentation metadata for one automation type.
type Descriptor struct {
	Label       string
	Description string
	Icon        string
}

// descriptors maps each automation type to its presentation metadata.
// Unknown types fall back to a generic descriptor.
var descriptors = map[Type]Descriptor{
	TypeBookingReminder: {
		Label:       "Booking reminder",
		Description: "Remind customers ahead of their upcoming booking",
		Icon:        "calendar-clock",
	},
	TypeLeadFollowUp: {
		Label:       "Lead follow-up",
		Description: "Nudge leads that have gone quiet",
		Icon:        "user-round-search",
	},
	TypeReviewRequest: {
		Label:       "Review request",
		Description: "Ask for a review after a completed booking",
		Icon:        "star",
	},
	TypeLowStockAlert: {
		Label:       "Low stock alert",
		Description: "Flag inventory items running low",
		Icon:        "package-open",
	},
	TypeWelcomeMessage: {
		Label:       "Welcome message",
		Description: "Greet new customers on their first contact",
		Icon:        "hand-heart",
	},
}

var defaultDescriptor = Descriptor{
	Label: "Automation",
	Icon:  "zap",
}

// DescriptorFor returns the presentation metadata for a type.
func DescriptorFor(t Type) Descriptor {
	if d, ok := descriptors[t]; ok {
		return d
	}
	return defaultDescriptor
}

// Automation mirrors the backend automation record.
type Automation struct {
	ID        string            `json:"id"`
	Type      Type              `json:"type"`
	Name      string            `json:"name"`
	Enabled   bool              `json:"enabled"`
	Settings  map[string]string `json:"settings,omitempty"`
	RunCount  int               `json:"runCount"`
	LastRunAt *time.Time        `json:"lastRunAt,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CreateRequest is the body for POST /automations.
type CreateRequest struct {
	Type     Type              `json:"type"`
	Name     string            `json:"name"`
	Settings map[string]string `json:"settings,omitempty"`
}

// UpdateRequest is the body for PATCH /automations/:id. Nil fields are
// left unchanged by the backend.
type UpdateRequest struct {
	Name     *string            `json:"name,omitempty"`
	Settings *map[string]string `json:"settings,omitempty"`
}
