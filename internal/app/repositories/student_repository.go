package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/pkg/dberrors"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// ErrStudentExists is returned when an insert hits the primary-key
// constraint on students.id.
var ErrStudentExists = errors.New("student id already exists")

// studentColumns is the full writable column set of the students table.
var studentColumns = []string{"id", "name", "age", "dept", "semester", "batch", "phone", "email", "city", "cgpa"}

// StudentRepository handles rows in the 'students' table.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// ListSummaries returns the public projection of every student in
// insertion order.
func (r *StudentRepository) ListSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	sql, args, err := r.sb.Select("id", "name", "dept", "semester", "city", "cgpa").
		From("students").
		OrderBy("ctid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.StudentSummary{}
	for rows.Next() {
		var s models.StudentSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Dept, &s.Semester, &s.City, &s.CGPA); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by id. There is no ownership check; any
// caller may fetch any record.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.Name, &s.Age, &s.Dept, &s.Semester, &s.Batch, &s.Phone, &s.Email, &s.City, &s.CGPA)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return s, nil
}

// Update applies a caller-supplied field map to one student row and
// returns the changed row count. Callers are responsible for restricting
// the map to writable columns.
func (r *StudentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing update student query")
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Search returns the minimal projection of students whose name or id
// contains the pattern.
func (r *StudentRepository) Search(ctx context.Context, pattern string) ([]models.StudentRef, error) {
	like := "%" + pattern + "%"
	sql, args, err := r.sb.Select("id", "name", "dept").
		From("students").
		Where(squirrel.Or{
			squirrel.Like{"name": like},
			squirrel.Like{"id": like},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search students query")
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	refs := []models.StudentRef{}
	for rows.Next() {
		var ref models.StudentRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Dept); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return refs, nil
}

// SearchByName returns students whose name contains the pattern. Used by
// the HTML fragment search endpoint.
func (r *StudentRepository) SearchByName(ctx context.Context, pattern string) ([]models.StudentRef, error) {
	sql, args, err := r.sb.Select("id", "name", "dept").
		From("students").
		Where(squirrel.Like{"name": "%" + pattern + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build name search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing name search query")
		return nil, fmt.Errorf("error searching students by name: %w", err)
	}
	defer rows.Close()

	refs := []models.StudentRef{}
	for rows.Next() {
		var ref models.StudentRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Dept); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return refs, nil
}

// Insert creates a new student row.
func (r *StudentRepository) Insert(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(s.ID, s.Name, s.Age, s.Dept, s.Semester, s.Batch, s.Phone, s.Email, s.City, s.CGPA).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrStudentExists
		}
		logger.Error().Err(err).Str("studentID", s.ID).Msg("Error executing insert student query")
		return fmt.Errorf("error inserting student: %w", err)
	}

	return nil
}

// Delete removes a student row and returns the removed count.
func (r *StudentRepository) Delete(ctx context.Context, id string) (int64, error) {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
		return 0, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// ListIDs returns every student id. Used by the bulk attendance sweep.
func (r *StudentRepository) ListIDs(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("id").From("students").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list student ids query")
		return nil, fmt.Errorf("error querying student ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student ids: %w", err)
	}

	return ids, nil
}

// CountByDept aggregates the student count per department.
func (r *StudentRepository) CountByDept(ctx context.Context) ([]dto.DeptCount, error) {
	sql, args, err := r.sb.Select("dept", "COUNT(*) AS count").
		From("students").
		GroupBy("dept").
		OrderBy("dept ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dept count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing dept count query")
		return nil, fmt.Errorf("error querying dept counts: %w", err)
	}
	defer rows.Close()

	counts := []dto.DeptCount{}
	for rows.Next() {
		var c dto.DeptCount
		if err := rows.Scan(&c.Dept, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning dept count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dept count rows: %w", err)
	}

	return counts, nil
}
