package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/logger"
)

// AuditRepository handles the append-only 'logs' table. Rows are never
// updated or deleted by the running service.
type AuditRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Append inserts one audit entry.
func (r *AuditRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	sql, args, err := r.sb.Insert("logs").
		Columns("user_id", "action", "endpoint", "ip_address", "timestamp", "request_data").
		Values(entry.UserID, entry.Action, entry.Endpoint, entry.IPAddress, entry.Timestamp, entry.RequestData).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build append log query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error appending audit entry: %w", err)
	}

	return nil
}

// ListRecent returns the newest entries first, up to limit.
func (r *AuditRepository) ListRecent(ctx context.Context, limit uint64) ([]models.AuditEntry, error) {
	sql, args, err := r.sb.Select("id", "user_id", "action", "endpoint", "ip_address", "timestamp", "request_data").
		From("logs").
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list logs query")
		return nil, fmt.Errorf("error querying logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Endpoint, &e.IPAddress, &e.Timestamp, &e.RequestData); err != nil {
			return nil, fmt.Errorf("error scanning log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}

	return entries, nil
}
