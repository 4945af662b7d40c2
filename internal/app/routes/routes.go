package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sicproject/backend/internal/app/controllers"
)

// SetupRouter configures all application routes. Every route is public:
// the service carries no authentication or authorization layer, which is
// part of its documented contract.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	libraryController *controllers.LibraryController,
	adminController *controllers.AdminController,
	feedbackController *controllers.FeedbackController,
	announcementController *controllers.AnnouncementController,
	miscController *controllers.MiscController,
) {
	router.GET("/ping", miscController.Ping)

	api := router.Group("/api")
	{
		api.GET("", miscController.Info)

		// --- Auth routes ---
		api.POST("/login", authController.Login)
		api.POST("/register", authController.Register)
		api.POST("/forgot-password", authController.ForgotPassword)

		// --- Student record routes ---
		api.GET("/students", studentController.List)
		student := api.Group("/student")
		{
			student.GET("/profile/:id", studentController.Profile)
			student.PUT("/profile/:id", studentController.UpdateProfile)
			student.GET("/marks/:id", studentController.Marks)
			student.GET("/attendance/:id", studentController.Attendance)
			student.GET("/fees/:id", studentController.Fees)
			student.POST("/search", studentController.Search)
			student.POST("/upload-photo", studentController.UploadPhoto)
		}

		// --- Library routes ---
		library := api.Group("/library")
		{
			library.GET("/books", libraryController.Books)
			library.GET("/search", libraryController.Search)
			library.POST("/reserve", libraryController.Reserve)
		}

		// --- Admin routes ---
		admin := api.Group("/admin")
		{
			admin.POST("/student/add", adminController.AddStudent)
			admin.PUT("/student/edit/:id", adminController.EditStudent)
			admin.DELETE("/student/:id", adminController.DeleteStudent)
			admin.POST("/marks/upload", adminController.UploadMarks)
			admin.POST("/attendance/bulk", adminController.BulkAttendance)
			admin.GET("/reports/all", adminController.Reports)
			admin.GET("/logs", adminController.Logs)
			admin.GET("/users", adminController.Users)
			admin.POST("/notify", adminController.Notify)
			admin.POST("/announcements", announcementController.Post)
		}

		// --- Feedback and announcements ---
		api.POST("/feedback", feedbackController.Submit)
		api.GET("/feedback", feedbackController.List)
		api.GET("/announcements", announcementController.List)

		// --- Misc ---
		api.GET("/file", miscController.File)
		api.GET("/export", miscController.Export)
		api.GET("/search", miscController.Search)
		api.GET("/uploads/list", miscController.UploadsList)
	}
}
