package models

// Student defines a row from the 'students' table. The id (e.g. STU001) is
// the join key for marks, attendance, fees, library loans and comments.
type Student struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Age      int     `json:"age" db:"age"`
	Dept     string  `json:"dept" db:"dept"`
	Semester int     `json:"semester" db:"semester"`
	Batch    int     `json:"batch" db:"batch"`
	Phone    string  `json:"phone" db:"phone"`
	Email    string  `json:"email" db:"email"`
	City     string  `json:"city" db:"city"`
	CGPA     float64 `json:"cgpa" db:"cgpa"`
}

// StudentSummary is the public projection returned by the student listing.
type StudentSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Dept     string  `json:"dept"`
	Semester int     `json:"semester"`
	City     string  `json:"city"`
	CGPA     float64 `json:"cgpa"`
}

// StudentRef is the minimal projection returned by name/id search.
type StudentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Dept string `json:"dept"`
}
