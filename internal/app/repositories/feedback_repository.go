package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// FeedbackRepository handles rows in the 'comments' table.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Insert appends one comment row and returns its id. The student id is
// stored as given, with no reference check.
func (r *FeedbackRepository) Insert(ctx context.Context, studentID, comment string) (int64, error) {
	sql, args, err := r.sb.Insert("comments").
		Columns("student_id", "comment", "created_at").
		Values(studentID, comment, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert comment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing insert comment query")
		return 0, fmt.Errorf("error inserting comment: %w", err)
	}

	return id, nil
}

// List returns the most recent comments, newest first.
func (r *FeedbackRepository) List(ctx context.Context, limit uint64) ([]models.Comment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "comment", "created_at").
		From("comments").
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list comments query")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}
