package services

import (
	"context"

	"github.com/sicproject/backend/internal/app/models"
)

// feedbackListLimit caps the public feedback page.
const feedbackListLimit = 100

// FeedbackService stores and lists free-text comments. The student id
// on a comment is whatever the caller claims.
type FeedbackService interface {
	Record(ctx context.Context, studentID, comment string, meta RequestMeta) (int64, error)
	List(ctx context.Context) ([]models.Comment, error)
}

type commentStore interface {
	Insert(ctx context.Context, studentID, comment string) (int64, error)
	List(ctx context.Context, limit uint64) ([]models.Comment, error)
}

type feedbackServiceImpl struct {
	comments commentStore
	audit    AuditService
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(comments commentStore, audit AuditService) FeedbackService {
	return &feedbackServiceImpl{
		comments: comments,
		audit:    audit,
	}
}

// Record appends the comment and audits it under the claimed student id,
// or "anon" when none was given.
func (s *feedbackServiceImpl) Record(ctx context.Context, studentID, comment string, meta RequestMeta) (int64, error) {
	actor := studentID
	if actor == "" {
		actor = "anon"
	}

	id, err := s.comments.Insert(ctx, studentID, comment)
	if err != nil {
		s.audit.Record(ctx, actor, "feedback_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, actor, "feedback", meta.Endpoint, meta.IP, comment)
	return id, nil
}

// List returns the newest comments first.
func (s *feedbackServiceImpl) List(ctx context.Context) ([]models.Comment, error) {
	comments, err := s.comments.List(ctx, feedbackListLimit)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return comments, nil
}
