package services

import (
	"context"
	"sort"
	"sync"

	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return 0, apperrors.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.Username] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) FindTeacherForGroup(_ context.Context, branch, group string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var candidates []*models.User
	for _, user := range r.users {
		if user.Role == models.RoleTeacher && user.BranchName() == branch && user.GroupName() == group {
			candidates = append(candidates, user)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	copied := *candidates[0]
	return &copied, nil
}

func (r *fakeUserRepo) ListTeachersByBranch(_ context.Context, branch string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	teachers := make([]*models.User, 0)
	for _, user := range r.users {
		if user.Role == models.RoleTeacher && user.BranchName() == branch {
			copied := *user
			teachers = append(teachers, &copied)
		}
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

// fakeStudentRepo is an in-memory IStudentRepository for service tests.
type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student)}
}

func (r *fakeStudentRepo) list(match func(*models.Student) bool) []*models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	students := make([]*models.Student, 0)
	for _, student := range r.students {
		if match(student) {
			copied := *student
			students = append(students, &copied)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (r *fakeStudentRepo) ListAll(_ context.Context) ([]*models.Student, error) {
	return r.list(func(*models.Student) bool { return true }), nil
}

func (r *fakeStudentRepo) ListByBranch(_ context.Context, branch string) ([]*models.Student, error) {
	return r.list(func(s *models.Student) bool { return s.Branch == branch }), nil
}

func (r *fakeStudentRepo) ListByBranchGroup(_ context.Context, branch, group string) ([]*models.Student, error) {
	return r.list(func(s *models.Student) bool { return s.Branch == branch && s.Group == group }), nil
}

func (r *fakeStudentRepo) ListByTeacher(_ context.Context, teacherID int64) ([]*models.Student, error) {
	return r.list(func(s *models.Student) bool { return s.TeacherID != nil && *s.TeacherID == teacherID }), nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	student.ID = r.nextID
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return false, nil
	}
	delete(r.students, id)
	return true, nil
}
