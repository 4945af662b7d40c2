package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
)

// logsLimit caps the admin log listing.
const logsLimit = 500

// AdminService covers the administrative record operations. Like the
// rest of the API surface these carry no caller authorization; the
// "admin" actor label comes from the endpoint, not from a session.
type AdminService interface {
	AddStudent(ctx context.Context, req *dto.AddStudentRequest, meta RequestMeta) error
	EditStudent(ctx context.Context, id string, fields map[string]interface{}, meta RequestMeta) (int64, error)
	DeleteStudent(ctx context.Context, id string, meta RequestMeta) (int64, error)
	// BulkAttendance marks every enrolled student for one subject and
	// date. The returned count is the number of rows attempted; single
	// row failures are logged and skipped.
	BulkAttendance(ctx context.Context, req *dto.BulkAttendanceRequest, meta RequestMeta) (int, error)
	Report(ctx context.Context) (*dto.ReportResponse, error)
	Logs(ctx context.Context) ([]models.AuditEntry, error)
	Users(ctx context.Context) ([]models.User, error)
}

type accountLister interface {
	ListWithSecrets(ctx context.Context) ([]models.User, error)
}

type auditLister interface {
	ListRecent(ctx context.Context, limit uint64) ([]models.AuditEntry, error)
}

type adminServiceImpl struct {
	students   studentStore
	attendance academicStore
	accounts   accountLister
	logs       auditLister
	audit      AuditService
	logger     zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(students studentStore, attendance academicStore, accounts accountLister, logs auditLister, audit AuditService, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		students:   students,
		attendance: attendance,
		accounts:   accounts,
		logs:       logs,
		audit:      audit,
		logger:     logger,
	}
}

// AddStudent inserts a new student row with CGPA fixed at zero.
func (s *adminServiceImpl) AddStudent(ctx context.Context, req *dto.AddStudentRequest, meta RequestMeta) error {
	student := &models.Student{
		ID:       req.ID,
		Name:     req.Name,
		Age:      req.Age,
		Dept:     req.Dept,
		Semester: req.Semester,
		Batch:    req.Batch,
		Phone:    req.Phone,
		Email:    req.Email,
		City:     req.City,
		CGPA:     0,
	}

	if err := s.students.Insert(ctx, student); err != nil {
		s.audit.Record(ctx, "admin", "add_student_error", meta.Endpoint, meta.IP, err.Error())
		return classifyStoreError(err)
	}

	s.audit.Record(ctx, "admin", "add_student", meta.Endpoint, meta.IP, req)
	return nil
}

// EditStudent reuses the allow-listed profile update and reports the
// changed row count under the admin actor.
func (s *adminServiceImpl) EditStudent(ctx context.Context, id string, fields map[string]interface{}, meta RequestMeta) (int64, error) {
	filtered := FilterUpdatableFields(fields)

	changed, err := s.students.Update(ctx, id, filtered)
	if err != nil {
		s.audit.Record(ctx, "admin", "edit_student_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, "admin", "edit_student", meta.Endpoint, meta.IP, filtered)
	return changed, nil
}

// DeleteStudent removes the student row. Dependent records in other
// tables are left in place.
func (s *adminServiceImpl) DeleteStudent(ctx context.Context, id string, meta RequestMeta) (int64, error) {
	deleted, err := s.students.Delete(ctx, id)
	if err != nil {
		s.audit.Record(ctx, "admin", "delete_student_error", meta.Endpoint, meta.IP, err.Error())
		return 0, classifyStoreError(err)
	}

	s.audit.Record(ctx, "admin", "delete_student", meta.Endpoint, meta.IP, "deleted")
	return deleted, nil
}

// BulkAttendance inserts one row per enrolled student. The date may be
// in the past and the subject id is not checked against the subjects
// table.
func (s *adminServiceImpl) BulkAttendance(ctx context.Context, req *dto.BulkAttendanceRequest, meta RequestMeta) (int, error) {
	ids, err := s.students.ListIDs(ctx)
	if err != nil {
		return 0, classifyStoreError(err)
	}

	for _, id := range ids {
		row := &models.Attendance{
			StudentID: id,
			SubjectID: req.SubjectID,
			Date:      req.Date,
			Status:    req.Status,
			MarkedBy:  "admin",
		}
		if err := s.attendance.InsertAttendance(ctx, row); err != nil {
			s.logger.Warn().Err(err).
				Str("studentID", id).
				Str("subjectID", req.SubjectID).
				Msg("Skipped attendance row in bulk apply")
		}
	}

	s.audit.Record(ctx, "admin", "bulk_attendance", meta.Endpoint, meta.IP, req)
	return len(ids), nil
}

// Report aggregates the student head count per department.
func (s *adminServiceImpl) Report(ctx context.Context) (*dto.ReportResponse, error) {
	counts, err := s.students.CountByDept(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return &dto.ReportResponse{DeptDistribution: counts}, nil
}

// Logs returns the newest audit entries, capped at 500.
func (s *adminServiceImpl) Logs(ctx context.Context) ([]models.AuditEntry, error) {
	entries, err := s.logs.ListRecent(ctx, logsLimit)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return entries, nil
}

// Users returns every account row including the stored password.
func (s *adminServiceImpl) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.accounts.ListWithSecrets(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return users, nil
}
