package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/pkg/external"
	"github.com/sicproject/backend/internal/pkg/filestorage"
)

// UploadService handles the two file intake paths: student photos and
// the admin marks CSV.
type UploadService interface {
	// SavePhoto stores the uploaded photo under its original filename
	// and returns the stored name.
	SavePhoto(ctx context.Context, studentID string, file *multipart.FileHeader, meta RequestMeta) (string, error)
	// SaveMarksCSV stores the CSV, records the upload, and runs the
	// normalizer over it. Normalizer output is returned even when the
	// normalizer times out or exits non-zero.
	SaveMarksCSV(ctx context.Context, file *multipart.FileHeader, meta RequestMeta) (string, string, error)
}

type uploadRecorder interface {
	Insert(ctx context.Context, filename, uploader string) (int64, error)
}

type uploadServiceImpl struct {
	storage    filestorage.FileStorage
	uploads    uploadRecorder
	normalizer external.Normalizer
	audit      AuditService
	logger     zerolog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(storage filestorage.FileStorage, uploads uploadRecorder, normalizer external.Normalizer, audit AuditService, logger zerolog.Logger) UploadService {
	return &uploadServiceImpl{
		storage:    storage,
		uploads:    uploads,
		normalizer: normalizer,
		audit:      audit,
		logger:     logger,
	}
}

// SavePhoto stores the photo and records the intake. The student id is
// not checked against the students table.
func (s *uploadServiceImpl) SavePhoto(ctx context.Context, studentID string, file *multipart.FileHeader, meta RequestMeta) (string, error) {
	name, err := s.storage.SaveFile(file)
	if err != nil {
		s.audit.Record(ctx, actorOrUnknown(studentID), "photo_upload_error", meta.Endpoint, meta.IP, err.Error())
		return "", classifyStoreError(err)
	}

	if _, err := s.uploads.Insert(ctx, name, actorOrUnknown(studentID)); err != nil {
		s.logger.Warn().Err(err).Str("filename", name).Msg("Failed to record photo upload")
	}

	s.audit.Record(ctx, actorOrUnknown(studentID), "photo_upload", meta.Endpoint, meta.IP, "file:"+name)
	return name, nil
}

// SaveMarksCSV stores the CSV, records it under the admin uploader, and
// hands it to the normalizer. A normalizer failure does not undo the
// intake: the partial output travels back with a nil error, matching
// the contract that the upload itself succeeded.
func (s *uploadServiceImpl) SaveMarksCSV(ctx context.Context, file *multipart.FileHeader, meta RequestMeta) (string, string, error) {
	name, err := s.storage.SaveFile(file)
	if err != nil {
		s.audit.Record(ctx, "admin", "marks_upload_error", meta.Endpoint, meta.IP, err.Error())
		return "", "", classifyStoreError(err)
	}

	if _, err := s.uploads.Insert(ctx, name, "admin"); err != nil {
		s.logger.Warn().Err(err).Str("filename", name).Msg("Failed to record marks upload")
	}

	path, err := s.storage.Resolve(name)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", name).Msg("Stored CSV did not resolve inside the storage root")
		path = name
	}

	output, err := s.normalizer.Normalize(ctx, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", name).Msg("CSV normalization failed after intake")
	}

	s.audit.Record(ctx, "admin", "marks_upload", meta.Endpoint, meta.IP, "file:"+name)
	return name, output, nil
}
