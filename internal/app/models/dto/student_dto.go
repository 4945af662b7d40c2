package dto

// AddStudentRequest is the body of POST /api/admin/student/add.
type AddStudentRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age"`
	Dept     string `json:"dept"`
	Semester int    `json:"semester"`
	Batch    int    `json:"batch"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	City     string `json:"city"`
}

// SearchRequest is the body of POST /api/student/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// UpdateResponse reports how many rows a write touched.
type UpdateResponse struct {
	Status  string `json:"status"`
	Changes int64  `json:"changes"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// AddStudentResponse confirms an insert.
type AddStudentResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// DeptCount is one row of the department distribution report.
type DeptCount struct {
	Dept  string `json:"dept"`
	Count int64  `json:"count"`
}

// ReportResponse is the body of GET /api/admin/reports/all.
type ReportResponse struct {
	DeptDistribution []DeptCount `json:"dept_distribution"`
}
