package staff

import "time"

// Role is the account-level role. Owners bypass permission checks.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

// InviteStatus tracks the lifecycle of a staff invitation.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
)

// ActivityStatus tracks whether a member can currently sign in.
type ActivityStatus string

const (
	ActivityActive      ActivityStatus = "active"
	ActivityInactive    ActivityStatus = "inactive"
	ActivityDeactivated ActivityStatus = "deactivated"
)

// Permission names one of the nine independent capabilities.
type Permission string

const (
	PermViewBookings      Permission = "canViewBookings"
	PermManageBookings    Permission = "canManageBookings"
	PermViewLeads         Permission = "canViewLeads"
	PermManageLeads       Permission = "canManageLeads"
	PermViewInventory     Permission = "canViewInventory"
	PermManageInventory   Permission = "canManageInventory"
	PermViewAnalytics     Permission = "canViewAnalytics"
	PermManageTeam        Permission = "canManageTeam"
	PermManageAutomations Permission = "canManageAutomations"
)

// PermissionSet is the member's granular capability grid.
type PermissionSet struct {
	CanViewBookings      bool `json:"canViewBookings"`
	CanManageBookings    bool `json:"canManageBookings"`
	CanViewLeads         bool `json:"canViewLeads"`
	CanManageLeads       bool `json:"canManageLeads"`
	CanViewInventory     bool `json:"canViewInventory"`
	CanManageInventory   bool `json:"canManageInventory"`
	CanViewAnalytics     bool `json:"canViewAnalytics"`
	CanManageTeam        bool `json:"canManageTeam"`
	CanManageAutomations bool `json:"canManageAutomations"`
}

// Has reports whether the named permission is granted.
func (p PermissionSet) Has(perm Permission) bool {
	switch perm {
	case PermViewBookings:
		return p.CanViewBookings
	case PermManageBookings:
		return p.CanManageBookings
	case PermViewLeads:
		return p.CanViewLeads
	case PermManageLeads:
		return p.CanManageLeads
	case PermViewInventory:
		return p.CanViewInventory
	case PermManageInventory:
		return p.CanManageInventory
	case PermViewAnalytics:
		return p.CanViewAnalytics
	case PermManageTeam:
		return p.CanManageTeam
	case PermManageAutomations:
		return p.CanManageAutomations
	default:
		return false
	}
}

// HasAny reports whether at least one of the named permissions is granted.
func (p PermissionSet) HasAny(perms []Permission) bool {
	for _, perm := range perms {
		if p.Has(perm) {
			return true
		}
	}
	return false
}

// Member mirrors the backend staff record.
type Member struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Role         Role           `json:"role"`
	InviteStatus InviteStatus   `json:"inviteStatus"`
	Status       ActivityStatus `json:"status"`
	Permissions  PermissionSet  `json:"permissions"`
	InvitedAt    time.Time      `json:"invitedAt,omitempty"`
	JoinedAt     time.Time      `json:"joinedAt,omitempty"`
}

// Profile is the current user's staff profile (role plus permission set),
// distinct from the raw authentication identity.
type Profile struct {
	ID          string        `json:"id"`
	Role        Role          `json:"role"`
	Permissions PermissionSet `json:"permissions"`
}

// InviteRequest is the body for POST /staff/invite.
type InviteRequest struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Permissions PermissionSet `json:"permissions"`
}

// AcceptRequest is the body for POST /staff/accept/:token.
type AcceptRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
