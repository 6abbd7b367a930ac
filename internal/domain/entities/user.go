package entities

import "time"

const (
	RoleAdmin   = "Admin"
	RoleManager = "manager"
	RoleBuyer   = "buyer"
)

const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
)

// User is keyed by email for all lookups; the document id is only used
// for approval and deletion routes.
type User struct {
	ID        string    `json:"_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
