package models

// Attendance statuses.
const (
	AttendancePresent = "P"
	AttendanceAbsent  = "A"
)

// Attendance defines a row from the 'attendance' table. Dates are stored
// as ISO yyyy-mm-dd strings.
type Attendance struct {
	ID          int64  `json:"id" db:"id"`
	StudentID   string `json:"student_id" db:"student_id"`
	SubjectID   string `json:"subject_id" db:"subject_id"`
	Date        string `json:"date" db:"date"`
	Status      string `json:"status" db:"status"`
	MarkedBy    string `json:"marked_by" db:"marked_by"`
	SubjectName string `json:"subject_name,omitempty"`
}
