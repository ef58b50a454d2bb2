package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/db"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
	"github.com/umid/rosterhub/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user account persistence
type IUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	FindTeacherForGroup(ctx context.Context, branch, group string) (*models.User, error)
	ListTeachersByBranch(ctx context.Context, branch string) ([]*models.User, error)
}

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, username, password, role, branch, group_name, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.Branch, &user.Group, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1`,
		username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// Create persists a new user. The uniqueness check and the insert run in
// one transaction; the unique constraint on username backstops races.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
			user.Username).Scan(&exists); err != nil {
			return fmt.Errorf("error checking username: %w", err)
		}
		if exists {
			return apperrors.ErrUsernameTaken
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO users (username, password, role, branch, group_name)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			user.Username, user.Password, user.Role, user.Branch, user.Group).Scan(&id)
		if err != nil {
			if dberrors.IsUniqueViolation(err, "users_username_key") {
				return apperrors.ErrUsernameTaken
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	user.ID = id
	return id, nil
}

// FindTeacherForGroup returns the first teacher matching (branch, group).
// Absence is not an error: returns (nil, nil) when no teacher covers the
// group yet.
func (r *UserRepository) FindTeacherForGroup(ctx context.Context, branch, group string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND branch = $2 AND group_name = $3
		ORDER BY id
		LIMIT 1`,
		models.RoleTeacher, branch, group))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding teacher for group: %w", err)
	}

	return user, nil
}

// ListTeachersByBranch retrieves all teachers in a branch
func (r *UserRepository) ListTeachersByBranch(ctx context.Context, branch string) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND branch = $2
		ORDER BY id`,
		models.RoleTeacher, branch)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	teachers := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}
