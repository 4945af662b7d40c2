package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/logger"
)

var loanColumns = []string{"id", "student_id", "book_id", "title", "issue_date", "due_date", "return_date", "fine"}

// LibraryRepository handles loan rows in the 'library' table.
type LibraryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLibraryRepository creates a new LibraryRepository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *LibraryRepository) scanLoans(ctx context.Context, sql string, args []interface{}) ([]models.LibraryLoan, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing library query")
		return nil, fmt.Errorf("error querying library loans: %w", err)
	}
	defer rows.Close()

	loans := []models.LibraryLoan{}
	for rows.Next() {
		var l models.LibraryLoan
		if err := rows.Scan(&l.ID, &l.StudentID, &l.BookID, &l.Title, &l.IssueDate, &l.DueDate, &l.ReturnDate, &l.Fine); err != nil {
			return nil, fmt.Errorf("error scanning loan row: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, nil
}

// LoansByStudent returns every loan held by one student.
func (r *LibraryRepository) LoansByStudent(ctx context.Context, studentID string) ([]models.LibraryLoan, error) {
	sql, args, err := r.sb.Select(loanColumns...).
		From("library").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build loans query: %w", err)
	}
	return r.scanLoans(ctx, sql, args)
}

// Search returns loans whose title or book id contains the pattern.
func (r *LibraryRepository) Search(ctx context.Context, pattern string) ([]models.LibraryLoan, error) {
	like := "%" + pattern + "%"
	sql, args, err := r.sb.Select(loanColumns...).
		From("library").
		Where(squirrel.Or{
			squirrel.Like{"title": like},
			squirrel.Like{"book_id": like},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build library search query: %w", err)
	}
	return r.scanLoans(ctx, sql, args)
}

// InsertLoan creates a reservation row and returns its id.
func (r *LibraryRepository) InsertLoan(ctx context.Context, loan *models.LibraryLoan) (int64, error) {
	sql, args, err := r.sb.Insert("library").
		Columns("student_id", "book_id", "title", "issue_date", "due_date", "fine").
		Values(loan.StudentID, loan.BookID, loan.Title, loan.IssueDate, loan.DueDate, loan.Fine).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert loan query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("studentID", loan.StudentID).Msg("Error executing insert loan query")
		return 0, fmt.Errorf("error inserting loan: %w", err)
	}

	return id, nil
}
