package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold. Stored by name in the
// roles table, never mutated at runtime.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
	RoleUser      Role = "User"
)

// DefaultRole is assigned on registration.
const DefaultRole = RoleUser

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleUser:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Password    string // bcrypt hash
	DateOfBirth time.Time
	Role        Role
}
