package models

import "time"

// User defines the account model based on the 'users' table. Branch and
// Group are nullable: a superadmin carries neither, an admin carries a
// branch, a teacher carries both.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                    // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"alice"`    // Login name, unique
	Password  string    `json:"-" db:"password"`                           // Hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"teacher"`          // superadmin, admin or teacher
	Branch    *string   `json:"branch,omitempty" db:"branch" example:"B1"` // Organizational unit (nullable)
	Group     *string   `json:"group,omitempty" db:"group_name" example:"G1"` // Class/cohort within the branch (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// BranchName returns the branch or the empty string when unset.
func (u *User) BranchName() string {
	if u.Branch == nil {
		return ""
	}
	return *u.Branch
}

// GroupName returns the group or the empty string when unset.
func (u *User) GroupName() string {
	if u.Group == nil {
		return ""
	}
	return *u.Group
}
