package services

import (
	"context"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/pkg/external"
)

// GatewayService fronts the outbound side effects: notifications and
// URL export fetches.
type GatewayService interface {
	Notify(ctx context.Context, req *dto.NotifyRequest, meta RequestMeta) error
	Export(ctx context.Context, url string, meta RequestMeta) ([]byte, error)
}

type gatewayServiceImpl struct {
	notifier external.Notifier
	fetcher  external.Fetcher
	audit    AuditService
}

// NewGatewayService creates a new gateway service instance
func NewGatewayService(notifier external.Notifier, fetcher external.Fetcher, audit AuditService) GatewayService {
	return &gatewayServiceImpl{
		notifier: notifier,
		fetcher:  fetcher,
		audit:    audit,
	}
}

// Notify sends one message. The attempt is audited whether or not the
// delivery succeeds.
func (s *gatewayServiceImpl) Notify(ctx context.Context, req *dto.NotifyRequest, meta RequestMeta) error {
	err := s.notifier.Notify(ctx, req.To, req.Subject, req.Body)
	s.audit.Record(ctx, "admin", "notify", meta.Endpoint, meta.IP, req)
	if err != nil {
		return err
	}
	return nil
}

// Export fetches the bytes behind a caller-supplied URL.
func (s *gatewayServiceImpl) Export(ctx context.Context, url string, meta RequestMeta) ([]byte, error) {
	data, err := s.fetcher.Fetch(ctx, url)
	s.audit.Record(ctx, meta.ActorOr("unknown"), "export", meta.Endpoint, meta.IP, url)
	if err != nil {
		return data, err
	}
	return data, nil
}
