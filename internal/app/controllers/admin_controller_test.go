package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/pkg/apperrors"
)

func TestAddStudentEchoesID(t *testing.T) {
	var got *dto.AddStudentRequest
	admin := &stubAdminService{
		addStudent: func(req *dto.AddStudentRequest) error {
			got = req
			return nil
		},
	}
	router := setupRouter(t, &testDeps{admin: admin})

	rec := doJSON(router, http.MethodPost, "/api/admin/student/add", gin.H{
		"id": "STU031", "name": "Meera Gupta", "dept": "IT", "semester": 1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"added","id":"STU031"}`, rec.Body.String())
	require.NotNil(t, got)
	assert.Equal(t, "Meera Gupta", got.Name)
	assert.Equal(t, "IT", got.Dept)
}

func TestAddStudentRequiresIDAndName(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/admin/student/add", gin.H{"dept": "IT"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestAddStudentDuplicate(t *testing.T) {
	admin := &stubAdminService{
		addStudent: func(*dto.AddStudentRequest) error { return apperrors.ErrConflict },
	}
	router := setupRouter(t, &testDeps{admin: admin})

	rec := doJSON(router, http.MethodPost, "/api/admin/student/add", gin.H{"id": "STU001", "name": "Rahul Sharma"})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_002")
}

func TestDeleteStudentConfirmsID(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodDelete, "/api/admin/student/STU005", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"deleted","id":"STU005"}`, rec.Body.String())
}

func TestBulkAttendanceReportsAttemptedCount(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/admin/attendance/bulk", gin.H{
		"date": "2025-09-01", "subject_id": "SUB101", "status": "P",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"applied","count":30}`, rec.Body.String())
}

func TestBulkAttendanceRequiresAllFields(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/admin/attendance/bulk", gin.H{"date": "2025-09-01"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotifyDeliveryResult(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/admin/notify", gin.H{
		"to": "student@example.edu", "subject": "Fees", "body": "Pay up",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"sent"}`, rec.Body.String())
}

func TestUploadMarksRequiresCSVFile(t *testing.T) {
	router := setupRouter(t, &testDeps{})

	rec := doJSON(router, http.MethodPost, "/api/admin/marks/upload", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}
