package integrations

import "time"

// Provider names a third-party integration.
type Provider string

const (
	ProviderCalendar  Provider = "calendar"
	ProviderMail      Provider = "mail"
	ProviderPayments  Provider = "payments"
	ProviderMessaging Provider = "messaging"
)

// ConnectionState is the per-provider connection state.
type ConnectionState string

const (
	StateConnected    ConnectionState = "connected"
	StateDisconnected ConnectionState = "disconnected"
	StateError        ConnectionState = "error"
	StatePending      ConnectionState = "pending"
)

// Status is the backend view of one provider connection.
type Status struct {
	Provider  Provider        `json:"provider"`
	State     ConnectionState `json:"state"`
	Account   string          `json:"account,omitempty"`
	LastSync  *time.Time      `json:"lastSync,omitempty"`
	LastError string          `json:"lastError,omitempty"`
}
