// Package auth holds the authorization policy: stateless decisions
// mapping (actor role, actor scope, action, target) to allow or deny.
// Roles and scopes are fixed, this is not a configurable permissions
// engine.
package auth

import (
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
)

// ListScope describes which students an actor may view.
type ListScope int

const (
	// ScopeAll covers every student (superadmin).
	ScopeAll ListScope = iota
	// ScopeBranch covers the actor's own branch (admin).
	ScopeBranch
	// ScopeBranchGroup covers the actor's own branch and group (teacher).
	ScopeBranchGroup
)

// StudentListScope resolves the viewing scope for an actor.
func StudentListScope(actor *models.User) (ListScope, error) {
	switch actor.Role {
	case models.RoleSuperadmin:
		return ScopeAll, nil
	case models.RoleAdmin:
		return ScopeBranch, nil
	case models.RoleTeacher:
		return ScopeBranchGroup, nil
	default:
		return 0, apperrors.ErrUnknownRole
	}
}

// CanAddStudent decides whether the actor may enroll a student into the
// given branch. Superadmin: any branch. Admin: own branch only.
// Teachers may not enroll.
func CanAddStudent(actor *models.User, branch string) error {
	switch actor.Role {
	case models.RoleSuperadmin:
		return nil
	case models.RoleAdmin:
		if actor.BranchName() != branch {
			return apperrors.NewForbiddenError("you can only add students to your own branch")
		}
		return nil
	default:
		return apperrors.NewForbiddenError("only admin and superadmin can add students")
	}
}

// CanDeleteStudent decides whether the actor may remove the target
// student. The target is fetched state: an admin's decision depends on
// the stored branch, not just the actor's identity.
func CanDeleteStudent(actor *models.User, target *models.Student) error {
	switch actor.Role {
	case models.RoleSuperadmin:
		return nil
	case models.RoleAdmin:
		if target == nil || target.Branch != actor.BranchName() {
			return apperrors.NewForbiddenError("you cannot delete this student")
		}
		return nil
	default:
		return apperrors.NewForbiddenError("only admin and superadmin can delete students")
	}
}

// CanAddAdmin decides whether the actor may create admin accounts.
func CanAddAdmin(actor *models.User) error {
	if actor.Role != models.RoleSuperadmin {
		return apperrors.NewForbiddenError("only superadmin can add admins")
	}
	return nil
}

// CanListTeachers decides whether the actor may view the teachers of
// the given branch.
func CanListTeachers(actor *models.User, branch string) error {
	switch actor.Role {
	case models.RoleSuperadmin:
		return nil
	case models.RoleAdmin:
		if actor.BranchName() != branch {
			return apperrors.NewForbiddenError("you can only view teachers of your own branch")
		}
		return nil
	default:
		return apperrors.NewForbiddenError("only admin and superadmin can view teachers")
	}
}
