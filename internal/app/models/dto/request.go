package dto

// ReserveRequest is the body of POST /api/library/reserve.
type ReserveRequest struct {
	BookID    string `json:"book_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// BulkAttendanceRequest is the body of POST /api/admin/attendance/bulk.
// The subject id is an unchecked association.
type BulkAttendanceRequest struct {
	Date      string `json:"date" binding:"required"`
	SubjectID string `json:"subject_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// NotifyRequest is the body of POST /api/admin/notify.
type NotifyRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// FeedbackRequest is the body of POST /api/feedback. The student id is
// free text and intentionally unvalidated.
type FeedbackRequest struct {
	StudentID string `json:"student_id"`
	Comment   string `json:"comment" binding:"required"`
	Category  string `json:"category"`
}

// AnnouncementRequest is the body of POST /api/admin/announcements.
type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	PostedBy string `json:"posted_by"`
	Audience string `json:"audience"`
}
