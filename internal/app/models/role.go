package models

import "github.com/umid/rosterhub/internal/pkg/apperrors"

// Role defines the user role type. The set is closed: superadmin, admin
// and teacher. Anything else is rejected at the boundary.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
)

// ParseRole converts an input string into a Role, rejecting values
// outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperadmin, RoleAdmin, RoleTeacher:
		return Role(s), nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}

// IsValid reports whether the role belongs to the closed set.
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
