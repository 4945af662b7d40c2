package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/controllers"
	"github.com/sicproject/backend/internal/app/models"
	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/routes"
	"github.com/sicproject/backend/internal/app/services"
)

// Stub services with overridable function fields. Zero-value stubs
// answer empty results.

type stubAuthService struct {
	authenticate func(username, password string) (*dto.LoginResponse, error)
	register     func(username, password string) (int64, error)
	exists       func(username string) (bool, error)
}

func (s *stubAuthService) Authenticate(_ context.Context, username, password string, _ services.RequestMeta) (*dto.LoginResponse, error) {
	if s.authenticate != nil {
		return s.authenticate(username, password)
	}
	return &dto.LoginResponse{}, nil
}

func (s *stubAuthService) Register(_ context.Context, username, password string, _ services.RequestMeta) (int64, error) {
	if s.register != nil {
		return s.register(username, password)
	}
	return 1, nil
}

func (s *stubAuthService) UsernameExists(_ context.Context, username string) (bool, error) {
	if s.exists != nil {
		return s.exists(username)
	}
	return false, nil
}

type stubStudentService struct {
	get          func(id string) (*models.Student, error)
	update       func(id string, fields map[string]interface{}) (int64, error)
	search       func(pattern string) ([]models.StudentRef, error)
	searchByName func(pattern string) ([]models.StudentRef, error)
}

func (s *stubStudentService) ListSummaries(context.Context) ([]models.StudentSummary, error) {
	return []models.StudentSummary{}, nil
}

func (s *stubStudentService) Get(_ context.Context, id string) (*models.Student, error) {
	if s.get != nil {
		return s.get(id)
	}
	return nil, nil
}

func (s *stubStudentService) Update(_ context.Context, id string, fields map[string]interface{}, _ services.RequestMeta) (int64, error) {
	if s.update != nil {
		return s.update(id, fields)
	}
	return 0, nil
}

func (s *stubStudentService) Search(_ context.Context, pattern string) ([]models.StudentRef, error) {
	if s.search != nil {
		return s.search(pattern)
	}
	return []models.StudentRef{}, nil
}

func (s *stubStudentService) SearchByName(_ context.Context, pattern string) ([]models.StudentRef, error) {
	if s.searchByName != nil {
		return s.searchByName(pattern)
	}
	return []models.StudentRef{}, nil
}

type stubAcademicService struct{}

func (stubAcademicService) Marks(context.Context, string) ([]models.Mark, error) {
	return []models.Mark{}, nil
}
func (stubAcademicService) Attendance(context.Context, string) ([]models.Attendance, error) {
	return []models.Attendance{}, nil
}
func (stubAcademicService) Fees(context.Context, string) ([]models.Fee, error) {
	return []models.Fee{}, nil
}

type stubUploadService struct {
	savePhoto func(studentID string, file *multipart.FileHeader) (string, error)
}

func (s *stubUploadService) SavePhoto(_ context.Context, studentID string, file *multipart.FileHeader, _ services.RequestMeta) (string, error) {
	if s.savePhoto != nil {
		return s.savePhoto(studentID, file)
	}
	return file.Filename, nil
}

func (s *stubUploadService) SaveMarksCSV(_ context.Context, file *multipart.FileHeader, _ services.RequestMeta) (string, string, error) {
	return file.Filename, "normalized", nil
}

type stubLibraryService struct{}

func (stubLibraryService) LoansByStudent(context.Context, string) ([]models.LibraryLoan, error) {
	return []models.LibraryLoan{}, nil
}
func (stubLibraryService) Search(context.Context, string) ([]models.LibraryLoan, error) {
	return []models.LibraryLoan{}, nil
}
func (stubLibraryService) Reserve(_ context.Context, studentID, bookID string, _ services.RequestMeta) (*models.LibraryLoan, error) {
	return &models.LibraryLoan{ID: 1, StudentID: studentID, BookID: bookID, Title: "reserved-" + bookID}, nil
}

type stubAdminService struct {
	addStudent func(req *dto.AddStudentRequest) error
}

func (s *stubAdminService) AddStudent(_ context.Context, req *dto.AddStudentRequest, _ services.RequestMeta) error {
	if s.addStudent != nil {
		return s.addStudent(req)
	}
	return nil
}

func (s *stubAdminService) EditStudent(_ context.Context, _ string, _ map[string]interface{}, _ services.RequestMeta) (int64, error) {
	return 1, nil
}

func (s *stubAdminService) DeleteStudent(_ context.Context, _ string, _ services.RequestMeta) (int64, error) {
	return 1, nil
}

func (s *stubAdminService) BulkAttendance(_ context.Context, _ *dto.BulkAttendanceRequest, _ services.RequestMeta) (int, error) {
	return 30, nil
}

func (s *stubAdminService) Report(context.Context) (*dto.ReportResponse, error) {
	return &dto.ReportResponse{DeptDistribution: []dto.DeptCount{}}, nil
}

func (s *stubAdminService) Logs(context.Context) ([]models.AuditEntry, error) {
	return []models.AuditEntry{}, nil
}

func (s *stubAdminService) Users(context.Context) ([]models.User, error) {
	return []models.User{}, nil
}

type stubFeedbackService struct {
	list []models.Comment
}

func (s *stubFeedbackService) Record(_ context.Context, _, _ string, _ services.RequestMeta) (int64, error) {
	return 1, nil
}

func (s *stubFeedbackService) List(context.Context) ([]models.Comment, error) {
	return s.list, nil
}

type stubAnnouncementService struct{}

func (stubAnnouncementService) List(context.Context) ([]models.Announcement, error) {
	return []models.Announcement{}, nil
}
func (stubAnnouncementService) Post(_ context.Context, _ *dto.AnnouncementRequest, _ services.RequestMeta) (int64, error) {
	return 1, nil
}

type stubGatewayService struct{}

func (stubGatewayService) Notify(_ context.Context, _ *dto.NotifyRequest, _ services.RequestMeta) error {
	return nil
}
func (stubGatewayService) Export(_ context.Context, _ string, _ services.RequestMeta) ([]byte, error) {
	return []byte("exported"), nil
}

type stubStorage struct {
	resolve func(relPath string) (string, error)
}

func (s *stubStorage) SaveFile(fh *multipart.FileHeader) (string, error) { return fh.Filename, nil }
func (s *stubStorage) List() ([]string, error)                           { return []string{"welcome.pdf"}, nil }
func (s *stubStorage) Resolve(relPath string) (string, error) {
	if s.resolve != nil {
		return s.resolve(relPath)
	}
	return "/srv/uploads/" + relPath, nil
}

type testDeps struct {
	auth     *stubAuthService
	students *stubStudentService
	uploads  *stubUploadService
	admin    *stubAdminService
	feedback *stubFeedbackService
	storage  *stubStorage
}

func setupRouter(t *testing.T, deps *testDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if deps.auth == nil {
		deps.auth = &stubAuthService{}
	}
	if deps.students == nil {
		deps.students = &stubStudentService{}
	}
	if deps.uploads == nil {
		deps.uploads = &stubUploadService{}
	}
	if deps.admin == nil {
		deps.admin = &stubAdminService{}
	}
	if deps.feedback == nil {
		deps.feedback = &stubFeedbackService{}
	}
	if deps.storage == nil {
		deps.storage = &stubStorage{}
	}

	lgr := zerolog.Nop()
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(deps.auth, lgr),
		controllers.NewStudentController(deps.students, stubAcademicService{}, deps.uploads, lgr),
		controllers.NewLibraryController(stubLibraryService{}, lgr),
		controllers.NewAdminController(deps.admin, deps.uploads, stubGatewayService{}, lgr),
		controllers.NewFeedbackController(deps.feedback, lgr),
		controllers.NewAnnouncementController(stubAnnouncementService{}, lgr),
		controllers.NewMiscController(deps.students, stubGatewayService{}, deps.storage, lgr),
	)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
