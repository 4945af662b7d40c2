package services

import (
	"errors"
	"fmt"

	"github.com/sicproject/backend/internal/app/repositories"
	"github.com/sicproject/backend/internal/pkg/apperrors"
	"github.com/sicproject/backend/internal/pkg/dberrors"
)

// RequestMeta carries the audit context of one API call down into the
// query/command layer: who acted, from where, against which endpoint.
type RequestMeta struct {
	Actor    string
	Endpoint string
	IP       string
}

// ActorOr returns the actor identity or the given fallback when the
// caller is unauthenticated.
func (m RequestMeta) ActorOr(fallback string) string {
	if m.Actor == "" {
		return fallback
	}
	return m.Actor
}

// classifyStoreError maps repository errors onto the service taxonomy:
// missing rows stay NotFound, unique violations become Conflict, an
// unreachable store becomes StorageUnavailable, everything else is
// wrapped as InternalError.
func classifyStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, repositories.ErrUsernameTaken),
		errors.Is(err, repositories.ErrStudentExists):
		return apperrors.ErrConflict
	case dberrors.IsConnectionError(err):
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
}
