package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
)

// IStudentRepository defines the interface for student record persistence
type IStudentRepository interface {
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListByBranch(ctx context.Context, branch string) ([]*models.Student, error)
	ListByBranchGroup(ctx context.Context, branch, group string) ([]*models.Student, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentRepository handles student record database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, name, branch, group_name, teacher_id`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.Name, &student.Branch, &student.Group, &student.TeacherID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ListAll retrieves every student record
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY id`)
}

// ListByBranch retrieves all students in a branch
func (r *StudentRepository) ListByBranch(ctx context.Context, branch string) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE branch = $1
		ORDER BY id`,
		branch)
}

// ListByBranchGroup retrieves all students in a branch and group
func (r *StudentRepository) ListByBranchGroup(ctx context.Context, branch, group string) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE branch = $1 AND group_name = $2
		ORDER BY id`,
		branch, group)
}

// ListByTeacher retrieves the students assigned to a teacher, served by
// the secondary index on teacher_id.
func (r *StudentRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE teacher_id = $1
		ORDER BY id`,
		teacherID)
}

// GetByID retrieves a single student record
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`,
		id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return student, nil
}

// Create persists a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (name, branch, group_name, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		student.Name, student.Branch, student.Group, student.TeacherID).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Delete removes a student record, reporting whether it existed
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM students WHERE id = $1`,
		id)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
