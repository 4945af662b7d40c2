package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// AcademicRepository handles marks, attendance and fee rows.
type AcademicRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAcademicRepository creates a new AcademicRepository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// MarksByStudent returns every mark for one student joined with the
// subject name.
func (r *AcademicRepository) MarksByStudent(ctx context.Context, studentID string) ([]models.Mark, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.student_id", "m.subject_id", "m.exam_type", "m.marks", "m.max_marks", "m.grade", "s.subject_name").
		From("marks m").
		Join("subjects s ON m.subject_id = s.subject_id").
		Where(squirrel.Eq{"m.student_id": studentID}).
		OrderBy("m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build marks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing marks query")
		return nil, fmt.Errorf("error querying marks: %w", err)
	}
	defer rows.Close()

	marks := []models.Mark{}
	for rows.Next() {
		var m models.Mark
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SubjectID, &m.ExamType, &m.Score, &m.MaxScore, &m.Grade, &m.SubjectName); err != nil {
			return nil, fmt.Errorf("error scanning mark row: %w", err)
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mark rows: %w", err)
	}

	return marks, nil
}

// AttendanceByStudent returns attendance rows for one student joined with
// the subject name, most recent date first.
func (r *AcademicRepository) AttendanceByStudent(ctx context.Context, studentID string) ([]models.Attendance, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.student_id", "a.subject_id", "a.date", "a.status", "a.marked_by", "COALESCE(s.subject_name, '')").
		From("attendance a").
		LeftJoin("subjects s ON a.subject_id = s.subject_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing attendance query")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.SubjectID, &a.Date, &a.Status, &a.MarkedBy, &a.SubjectName); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// InsertAttendance appends one attendance row. The subject id is an
// unchecked association.
func (r *AcademicRepository) InsertAttendance(ctx context.Context, a *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "subject_id", "date", "status", "marked_by").
		Values(a.StudentID, a.SubjectID, a.Date, a.Status, a.MarkedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert attendance query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", a.StudentID).Msg("Error executing insert attendance query")
		return fmt.Errorf("error inserting attendance: %w", err)
	}

	return nil
}

// FeesByStudent returns fee rows for one student ordered by term.
func (r *AcademicRepository) FeesByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	sql, args, err := r.sb.Select(
		"id", "student_id", "semester", "amount", "paid_amount", "due_date", "status", "payment_date").
		From("fees").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("semester ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing fees query")
		return nil, fmt.Errorf("error querying fees: %w", err)
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		var f models.Fee
		if err := rows.Scan(&f.ID, &f.StudentID, &f.Semester, &f.Amount, &f.PaidAmount, &f.DueDate, &f.Status, &f.PaymentDate); err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee rows: %w", err)
	}

	return fees, nil
}
