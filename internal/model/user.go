package model

import "time"

// User statuses. The store does not enforce the domain; the service layer does.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DefaultRole is assigned when a user is created without a role.
const DefaultRole = "User"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFilter narrows a user count. The zero value counts every user.
type UserFilter struct {
	// Status matches users with exactly this status when non-empty.
	Status string
	// CreatedToday matches users whose created_at falls on the current date.
	CreatedToday bool
}
