package dto

import "github.com/umid/rosterhub/internal/app/models"

// AddStudentRequest represents a new student to enroll
type AddStudentRequest struct {
	Name   string `form:"name" json:"name" binding:"required"`
	Branch string `form:"branch" json:"branch" binding:"required"`
	Group  string `form:"group" json:"group" binding:"required"`
}

// AddStudentResponse reports the enrolled student and which teacher, if
// any, was assigned to them.
type AddStudentResponse struct {
	Message         string `json:"message"`
	TeacherAssigned string `json:"teacher_assigned"`
}

// StudentListResponse wraps the role-scoped student listing
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
}

// TeacherListResponse wraps a branch-scoped teacher listing
type TeacherListResponse struct {
	Teachers []*models.User `json:"teachers"`
}

// AddAdminRequest represents a superadmin creating an admin account
type AddAdminRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Branch   string `form:"branch" json:"branch" binding:"required"`
}
