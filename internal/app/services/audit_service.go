package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models"
)

// AuditService appends one entry per externally observable action.
// Recording is best-effort: a failed append is logged locally and never
// blocks or fails the triggering operation.
type AuditService interface {
	Record(ctx context.Context, actor, action, endpoint, ip string, payload interface{})
}

// auditAppender is the slice of the audit repository this service needs.
type auditAppender interface {
	Append(ctx context.Context, entry *models.AuditEntry) error
}

type auditServiceImpl struct {
	repo   auditAppender
	logger zerolog.Logger
}

// NewAuditService creates a new audit service instance
func NewAuditService(repo auditAppender, logger zerolog.Logger) AuditService {
	return &auditServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Record appends one audit entry. The payload is serialized to JSON
// unless it is already a string.
func (s *auditServiceImpl) Record(ctx context.Context, actor, action, endpoint, ip string, payload interface{}) {
	entry := &models.AuditEntry{
		UserID:      actor,
		Action:      action,
		Endpoint:    endpoint,
		IPAddress:   ip,
		Timestamp:   time.Now(),
		RequestData: serializePayload(payload),
	}

	// The entry must survive a caller that has already given up on the
	// request; audit writes ride on an uncancelable context.
	if err := s.repo.Append(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.Warn().Err(err).
			Str("action", action).
			Str("endpoint", endpoint).
			Msg("Failed to append audit entry")
	}
}

func serializePayload(payload interface{}) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "unserializable payload"
		}
		return string(data)
	}
}
