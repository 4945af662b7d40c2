package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicproject/backend/internal/pkg/apperrors"
)

type fakeStorage struct {
	saved []string
	fail  bool
}

func (s *fakeStorage) SaveFile(fh *multipart.FileHeader) (string, error) {
	if s.fail {
		return "", errStoreDown
	}
	name := "upload.bin"
	if fh != nil {
		name = fh.Filename
	}
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeStorage) List() ([]string, error) {
	return append([]string{}, s.saved...), nil
}

func (s *fakeStorage) Resolve(relPath string) (string, error) {
	return "/srv/uploads/" + relPath, nil
}

type memUploadRecorder struct {
	rows   []string
	nextID int64
}

func (r *memUploadRecorder) Insert(_ context.Context, filename, uploader string) (int64, error) {
	r.nextID++
	r.rows = append(r.rows, uploader+":"+filename)
	return r.nextID, nil
}

type fakeNormalizer struct {
	output string
	err    error
	paths  []string
}

func (n *fakeNormalizer) Normalize(_ context.Context, path string) (string, error) {
	n.paths = append(n.paths, path)
	return n.output, n.err
}

func TestSavePhotoRecordsUpload(t *testing.T) {
	storage := &fakeStorage{}
	recorder := &memUploadRecorder{}
	audit := &fakeAudit{}
	svc := NewUploadService(storage, recorder, &fakeNormalizer{}, audit, zerolog.Nop())

	name, err := svc.SavePhoto(context.Background(), "STU001", &multipart.FileHeader{Filename: "face.png"}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "face.png", name)
	assert.Equal(t, []string{"STU001:face.png"}, recorder.rows)
	assert.Equal(t, []string{"photo_upload"}, audit.actions())
}

func TestSavePhotoWithoutStudentRecordsUnknown(t *testing.T) {
	recorder := &memUploadRecorder{}
	svc := NewUploadService(&fakeStorage{}, recorder, &fakeNormalizer{}, &fakeAudit{}, zerolog.Nop())

	_, err := svc.SavePhoto(context.Background(), "", &multipart.FileHeader{Filename: "x.png"}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown:x.png"}, recorder.rows)
}

func TestSaveMarksCSVReturnsNormalizerOutput(t *testing.T) {
	norm := &fakeNormalizer{output: "a,b,c\n1,2,3\n"}
	recorder := &memUploadRecorder{}
	audit := &fakeAudit{}
	svc := NewUploadService(&fakeStorage{}, recorder, norm, audit, zerolog.Nop())

	name, output, err := svc.SaveMarksCSV(context.Background(), &multipart.FileHeader{Filename: "marks.csv"}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "marks.csv", name)
	assert.Equal(t, "a,b,c\n1,2,3\n", output)
	assert.Equal(t, []string{"admin:marks.csv"}, recorder.rows)
	assert.Equal(t, []string{"marks_upload"}, audit.actions())
	// The normalizer sees the resolved storage path, not the raw name.
	require.Len(t, norm.paths, 1)
	assert.Equal(t, "/srv/uploads/marks.csv", norm.paths[0])
}

func TestSaveMarksCSVNormalizerTimeoutKeepsIntake(t *testing.T) {
	norm := &fakeNormalizer{
		output: "partial line\n",
		err:    errors.Join(apperrors.ErrExternalCallTimeout, errors.New("normalizer exceeded 10s")),
	}
	recorder := &memUploadRecorder{}
	svc := NewUploadService(&fakeStorage{}, recorder, norm, &fakeAudit{}, zerolog.Nop())

	_, output, err := svc.SaveMarksCSV(context.Background(), &multipart.FileHeader{Filename: "slow.csv"}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "partial line\n", output)
	assert.Equal(t, []string{"admin:slow.csv"}, recorder.rows)
}

func TestSaveMarksCSVStorageFailure(t *testing.T) {
	audit := &fakeAudit{}
	svc := NewUploadService(&fakeStorage{fail: true}, &memUploadRecorder{}, &fakeNormalizer{}, audit, zerolog.Nop())

	_, _, err := svc.SaveMarksCSV(context.Background(), &multipart.FileHeader{Filename: "x.csv"}, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, []string{"marks_upload_error"}, audit.actions())
}
