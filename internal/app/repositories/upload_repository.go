package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/pkg/logger"
)

// UploadRepository handles metadata rows in the 'uploads' table.
type UploadRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUploadRepository creates a new UploadRepository
func NewUploadRepository(db *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Insert records one accepted upload. Rows are never updated afterwards.
func (r *UploadRepository) Insert(ctx context.Context, filename, uploader string) (int64, error) {
	sql, args, err := r.sb.Insert("uploads").
		Columns("filename", "uploader", "uploaded_at").
		Values(filename, uploader, time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert upload query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("Error executing insert upload query")
		return 0, fmt.Errorf("error inserting upload: %w", err)
	}

	return id, nil
}
