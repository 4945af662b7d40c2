package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/pkg/apperrors"
)

func TestProfileMissAnswersEmptyObject(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodGet, "/api/student/profile/STU999", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestProfileReturnsStudent(t *testing.T) {
	students := &stubStudentService{
		get: func(id string) (*models.Student, error) {
			assert.Equal(t, "STU001", id)
			return &models.Student{ID: "STU001", Name: "Rahul Sharma", City: "Mumbai", CGPA: 7.0}, nil
		},
	}
	router := setupRouter(t, &testDeps{students: students})

	rec := doJSON(router, http.MethodGet, "/api/student/profile/STU001", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Rahul Sharma"`)
	assert.Contains(t, rec.Body.String(), `"city":"Mumbai"`)
}

func TestUpdateProfileReportsChanges(t *testing.T) {
	var gotFields map[string]interface{}
	students := &stubStudentService{
		update: func(id string, fields map[string]interface{}) (int64, error) {
			assert.Equal(t, "STU001", id)
			gotFields = fields
			return 1, nil
		},
	}
	router := setupRouter(t, &testDeps{students: students})

	rec := doJSON(router, http.MethodPut, "/api/student/profile/STU001", gin.H{"city": "Pune", "phone": "+919000000001"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"updated","changes":1}`, rec.Body.String())
	assert.Equal(t, "Pune", gotFields["city"])
}

func TestUpdateProfileStorageDown(t *testing.T) {
	students := &stubStudentService{
		update: func(string, map[string]interface{}) (int64, error) {
			return 0, apperrors.ErrStorageUnavailable
		},
	}
	router := setupRouter(t, &testDeps{students: students})

	rec := doJSON(router, http.MethodPut, "/api/student/profile/STU001", gin.H{"city": "Pune"})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestStudentSearchReturnsMatches(t *testing.T) {
	students := &stubStudentService{
		search: func(pattern string) ([]models.StudentRef, error) {
			assert.Equal(t, "rahul", pattern)
			return []models.StudentRef{{ID: "STU001", Name: "Rahul Sharma", Dept: "CSE"}}, nil
		},
	}
	router := setupRouter(t, &testDeps{students: students})

	rec := doJSON(router, http.MethodPost, "/api/student/search", gin.H{"query": "rahul"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"STU001"`)
}

func TestUploadPhotoRequiresFile(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/student/upload-photo", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestUploadPhotoStoresUnderOriginalName(t *testing.T) {
	var gotStudent, gotFile string
	uploads := &stubUploadService{
		savePhoto: func(studentID string, file *multipart.FileHeader) (string, error) {
			gotStudent = studentID
			gotFile = file.Filename
			return file.Filename, nil
		},
	}
	router := setupRouter(t, &testDeps{uploads: uploads})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "face.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-png"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("student_id", "STU001"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/student/upload-photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"uploaded","path":"/uploads/face.png"}`, rec.Body.String())
	assert.Equal(t, "STU001", gotStudent)
	assert.Equal(t, "face.png", gotFile)
}
