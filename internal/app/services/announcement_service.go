package services

import (
	"context"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
)

// AnnouncementService serves the public notice board.
type AnnouncementService interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Post(ctx context.Context, req *dto.AnnouncementRequest, meta RequestMeta) (int64, error)
}

type announcementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Insert(ctx context.Context, a *models.Announcement) (int64, error)
}

type announcementServiceImpl struct {
	announcements announcementStore
	audit         AuditService
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcements announcementStore, audit AuditService) AnnouncementService {
	return &announcementServiceImpl{
		announcements: announcements,
		audit:         audit,
	}
}

func (s *announcementServiceImpl) List(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.announcements.List(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return items, nil
}

// Post publishes one announcement. Missing author and audience fall back
// to "admin" and "all".
func (s *announcementServiceImpl) Post(ctx context.Context, req *dto.AnnouncementRequest, meta RequestMeta) (int64, error) {
	ann := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		PostedBy: req.PostedBy,
		Audience: req.Audience,
	}
	if ann.PostedBy == "" {
		ann.PostedBy = "admin"
	}
	if ann.Audience == "" {
		ann.Audience = "all"
	}

	id, err := s.announcements.Insert(ctx, ann)
	if err != nil {
		s.audit.Record(ctx, ann.PostedBy, "announcement_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, ann.PostedBy, "announcement", meta.Endpoint, meta.IP, req)
	return id, nil
}
