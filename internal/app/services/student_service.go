package services

import (
	"context"
	"errors"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/repositories"
)

// updatableStudentColumns is the fixed allow-list for the mass-assignment
// style update: any caller-supplied subset of these columns is applied,
// anything else is dropped. This keeps the open-ended update contract as
// a trusted overwrite capability instead of a free-for-all.
var updatableStudentColumns = map[string]bool{
	"name":     true,
	"age":      true,
	"dept":     true,
	"semester": true,
	"batch":    true,
	"phone":    true,
	"email":    true,
	"city":     true,
	"cgpa":     true,
}

// StudentService defines student record operations. None of them carry
// an ownership check: any caller may read or overwrite any record, which
// is the documented surface of this system.
type StudentService interface {
	ListSummaries(ctx context.Context) ([]models.StudentSummary, error)
	// Get returns (nil, nil) when no student matches; callers serve an
	// empty object rather than an error.
	Get(ctx context.Context, id string) (*models.Student, error)
	// Update applies an allow-listed field subset and returns the
	// changed row count.
	Update(ctx context.Context, id string, fields map[string]interface{}, meta RequestMeta) (int64, error)
	Search(ctx context.Context, pattern string) ([]models.StudentRef, error)
	SearchByName(ctx context.Context, pattern string) ([]models.StudentRef, error)
}

type studentStore interface {
	ListSummaries(ctx context.Context) ([]models.StudentSummary, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Search(ctx context.Context, pattern string) ([]models.StudentRef, error)
	SearchByName(ctx context.Context, pattern string) ([]models.StudentRef, error)
	Insert(ctx context.Context, s *models.Student) error
	Delete(ctx context.Context, id string) (int64, error)
	ListIDs(ctx context.Context) ([]string, error)
	CountByDept(ctx context.Context) ([]dto.DeptCount, error)
}

type studentServiceImpl struct {
	students studentStore
	audit    AuditService
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore, audit AuditService) StudentService {
	return &studentServiceImpl{
		students: students,
		audit:    audit,
	}
}

// ListSummaries returns the unrestricted public projection.
func (s *studentServiceImpl) ListSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	summaries, err := s.students.ListSummaries(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return summaries, nil
}

// Get is a point lookup with no ownership check.
func (s *studentServiceImpl) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, classifyStoreError(err)
	}
	return student, nil
}

// FilterUpdatableFields drops every key outside the writable column
// allow-list. Exported for reuse by the admin edit path.
func FilterUpdatableFields(fields map[string]interface{}) map[string]interface{} {
	filtered := map[string]interface{}{}
	for k, v := range fields {
		if updatableStudentColumns[k] {
			filtered[k] = v
		}
	}
	return filtered
}

// Update applies a caller-supplied field set, restricted to the
// allow-list, and audits the attempt either way.
func (s *studentServiceImpl) Update(ctx context.Context, id string, fields map[string]interface{}, meta RequestMeta) (int64, error) {
	filtered := FilterUpdatableFields(fields)

	changed, err := s.students.Update(ctx, id, filtered)
	if err != nil {
		s.audit.Record(ctx, meta.ActorOr("unknown"), "profile_update_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, meta.ActorOr("unknown"), "profile_update", meta.Endpoint, meta.IP, filtered)
	return changed, nil
}

// Search matches the pattern as a substring of name or id.
func (s *studentServiceImpl) Search(ctx context.Context, pattern string) ([]models.StudentRef, error) {
	refs, err := s.students.Search(ctx, pattern)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return refs, nil
}

// SearchByName matches the pattern as a substring of name only.
func (s *studentServiceImpl) SearchByName(ctx context.Context, pattern string) ([]models.StudentRef, error) {
	refs, err := s.students.SearchByName(ctx, pattern)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return refs, nil
}
