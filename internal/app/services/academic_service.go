package services

import (
	"context"

	"github.com/sicproject/backend/internal/app/models"
)

// AcademicService serves the per-student academic record reads. Rows are
// always filtered by the student id the caller supplied; there is no
// ownership check beyond that.
type AcademicService interface {
	Marks(ctx context.Context, studentID string) ([]models.Mark, error)
	Attendance(ctx context.Context, studentID string) ([]models.Attendance, error)
	Fees(ctx context.Context, studentID string) ([]models.Fee, error)
}

type academicStore interface {
	MarksByStudent(ctx context.Context, studentID string) ([]models.Mark, error)
	AttendanceByStudent(ctx context.Context, studentID string) ([]models.Attendance, error)
	FeesByStudent(ctx context.Context, studentID string) ([]models.Fee, error)
	InsertAttendance(ctx context.Context, a *models.Attendance) error
}

type academicServiceImpl struct {
	records academicStore
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(records academicStore) AcademicService {
	return &academicServiceImpl{records: records}
}

func (s *academicServiceImpl) Marks(ctx context.Context, studentID string) ([]models.Mark, error) {
	marks, err := s.records.MarksByStudent(ctx, studentID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return marks, nil
}

func (s *academicServiceImpl) Attendance(ctx context.Context, studentID string) ([]models.Attendance, error) {
	records, err := s.records.AttendanceByStudent(ctx, studentID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return records, nil
}

func (s *academicServiceImpl) Fees(ctx context.Context, studentID string) ([]models.Fee, error) {
	fees, err := s.records.FeesByStudent(ctx, studentID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return fees, nil
}
