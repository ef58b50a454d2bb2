// Package services contains the business logic layer.
//
// Services defined in this package:
//   - AuthService: open registration and credential login
//   - RosterService: policy-gated student and admin management
package services

import (
	"context"

	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/app/models/dto"
)

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// RosterService handles student and admin management for an
// authenticated caller, identified by the validated token subject.
type RosterService interface {
	ListStudents(ctx context.Context, callerUsername string) ([]*models.Student, error)
	AddStudent(ctx context.Context, callerUsername string, req *dto.AddStudentRequest) (*dto.AddStudentResponse, error)
	DeleteStudent(ctx context.Context, callerUsername string, studentID int64) error
	AddAdmin(ctx context.Context, callerUsername string, req *dto.AddAdminRequest) (string, error)
	ListTeachers(ctx context.Context, callerUsername, branch string) ([]*models.User, error)
}
