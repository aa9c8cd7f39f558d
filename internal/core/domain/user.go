package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Authorization decisions are made
// exclusively against these constants; never compare against raw strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// ParseRole converts an external string into a Role, rejecting anything
// outside the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleOwner, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the known constants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOwner || r == RoleAdmin
}

func (r Role) String() string { return string(r) }

// User models a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserWithRating is a user row on the admin dashboard. AvgRating is the
// average rating of the store the user owns; nil for non-owners and for
// owners whose store has no ratings yet.
type UserWithRating struct {
	User
	AvgRating *float64 `json:"avg_rating"`
}
