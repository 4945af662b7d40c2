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

// AnnouncementRepository handles rows in the 'announcements' table.
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// List returns announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "posted_by", "date", "audience").
		From("announcements").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	items := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.PostedBy, &a.Date, &a.Audience); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return items, nil
}

// Insert creates one announcement and returns its id.
func (r *AnnouncementRepository) Insert(ctx context.Context, a *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "content", "posted_by", "date", "audience").
		Values(a.Title, a.Content, a.PostedBy, time.Now(), a.Audience).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert announcement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing insert announcement query")
		return 0, fmt.Errorf("error inserting announcement: %w", err)
	}

	return id, nil
}
