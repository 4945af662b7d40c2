package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/dberrors"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// ErrUsernameTaken is returned when an insert hits the unique username
// constraint.
var ErrUsernameTaken = errors.New("username already exists")

// UserRepository handles account rows in the 'users' table.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// GetByCredentials looks up a user by exact username/password match. A
// miss is ErrNotFound; the caller decides how to present it.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "password", "role", "student_id").
		From("users").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	return user, nil
}

// Create inserts a new account and returns its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password", "role", "student_id").
		Values(user.Username, user.Password, user.Role, user.StudentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrUsernameTaken
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// UsernameExists reports whether any account has the given username.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build username exists query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// ListWithSecrets returns every account including the stored plaintext
// password. Exposing credentials this way is part of the documented
// contract of the admin user listing.
func (r *UserRepository) ListWithSecrets(ctx context.Context) ([]models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "password", "role", "student_id").
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
