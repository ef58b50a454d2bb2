package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/umid/rosterhub/internal/app/auth"
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/app/models/dto"
	"github.com/umid/rosterhub/internal/app/repositories"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
	"github.com/umid/rosterhub/internal/pkg/auth"
)

// rosterService implements RosterService. Each operation resolves the
// acting user from the store, checks the policy, then performs the
// store operation. Role, branch and group always come from the stored
// row, never from token claims.
type rosterService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewRosterService creates a new RosterService
func NewRosterService(userRepo repositories.IUserRepository, studentRepo repositories.IStudentRepository, logger zerolog.Logger) RosterService {
	return &rosterService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// resolveCaller loads the acting user by the validated token subject.
// A subject that no longer exists invalidates the session.
func (s *rosterService) resolveCaller(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error resolving caller: %w", err)
	}
	return user, nil
}

// ListStudents returns the students visible to the caller per their
// role scope.
func (s *rosterService) ListStudents(ctx context.Context, callerUsername string) ([]*models.Student, error) {
	caller, err := s.resolveCaller(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	scope, err := appauth.StudentListScope(caller)
	if err != nil {
		return nil, err
	}

	switch scope {
	case appauth.ScopeAll:
		return s.studentRepo.ListAll(ctx)
	case appauth.ScopeBranch:
		return s.studentRepo.ListByBranch(ctx, caller.BranchName())
	case appauth.ScopeBranchGroup:
		return s.studentRepo.ListByBranchGroup(ctx, caller.BranchName(), caller.GroupName())
	default:
		return nil, apperrors.ErrUnknownRole
	}
}

// AddStudent enrolls a student and assigns the first teacher covering
// the student's (branch, group), if one exists.
func (s *rosterService) AddStudent(ctx context.Context, callerUsername string, req *dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	caller, err := s.resolveCaller(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	if err := appauth.CanAddStudent(caller, req.Branch); err != nil {
		return nil, err
	}

	teacher, err := s.userRepo.FindTeacherForGroup(ctx, req.Branch, req.Group)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:   req.Name,
		Branch: req.Branch,
		Group:  req.Group,
	}
	if teacher != nil {
		student.TeacherID = &teacher.ID
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create student")
		return nil, err
	}

	assigned := "No teacher found for this group"
	if teacher != nil {
		assigned = teacher.Username
	}

	s.logger.Info().Str("name", student.Name).Str("branch", student.Branch).Str("group", student.Group).Msg("Student added")
	return &dto.AddStudentResponse{
		Message:         fmt.Sprintf("New student added: %s", student.Name),
		TeacherAssigned: assigned,
	}, nil
}

// DeleteStudent removes a student record. For an admin the target is
// fetched first: the authorization decision depends on the stored
// branch, and a missing target is indistinguishable from a cross-branch
// one.
func (s *rosterService) DeleteStudent(ctx context.Context, callerUsername string, studentID int64) error {
	caller, err := s.resolveCaller(ctx, callerUsername)
	if err != nil {
		return err
	}

	if caller.Role != models.RoleAdmin && caller.Role != models.RoleSuperadmin {
		return appauth.CanDeleteStudent(caller, nil)
	}

	if caller.Role == models.RoleAdmin {
		target, err := s.studentRepo.GetByID(ctx, studentID)
		if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		if err := appauth.CanDeleteStudent(caller, target); err != nil {
			return err
		}
	}

	deleted, err := s.studentRepo.Delete(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to delete student")
		return err
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}

	s.logger.Info().Int64("studentID", studentID).Str("by", caller.Username).Msg("Student deleted")
	return nil
}

// AddAdmin creates an admin account for a branch. Superadmin only.
func (s *rosterService) AddAdmin(ctx context.Context, callerUsername string, req *dto.AddAdminRequest) (string, error) {
	caller, err := s.resolveCaller(ctx, callerUsername)
	if err != nil {
		return "", err
	}

	if err := appauth.CanAddAdmin(caller); err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleAdmin,
		Branch:   &req.Branch,
	}

	if _, err := s.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return "", err
		}
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create admin")
		return "", fmt.Errorf("admin creation error: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Str("branch", req.Branch).Msg("Admin added")
	return fmt.Sprintf("New admin added: %s, branch: %s", admin.Username, req.Branch), nil
}

// ListTeachers returns the teachers of a branch. An admin omitting the
// branch parameter gets their own branch.
func (s *rosterService) ListTeachers(ctx context.Context, callerUsername, branch string) ([]*models.User, error) {
	caller, err := s.resolveCaller(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	if branch == "" && caller.Role == models.RoleAdmin {
		branch = caller.BranchName()
	}
	if branch == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "branch is required")
	}

	if err := appauth.CanListTeachers(caller, branch); err != nil {
		return nil, err
	}

	return s.userRepo.ListTeachersByBranch(ctx, branch)
}
