package domain

import "time"

// Role distinguishes traveler accounts from business (host) accounts.
type Role string

const (
	RoleTraveler Role = "traveler"
	RoleBusiness Role = "business"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r Role) bool {
	return r == RoleTraveler || r == RoleBusiness
}

// User is the domain representation of an account identity. A new login or
// signup replaces any prior user wholesale; logout clears it.
type User struct {
	ID UserID

	Name      string
	Email     string
	AvatarURL string
	Role      Role

	JoinedAt time.Time
}
