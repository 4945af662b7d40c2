package models

// Subject defines a row from the 'subjects' table.
type Subject struct {
	ID         string `json:"subject_id" db:"subject_id"`
	Name       string `json:"subject_name" db:"subject_name"`
	Code       string `json:"subject_code" db:"subject_code"`
	Credits    int    `json:"credits" db:"credits"`
	Department string `json:"department" db:"department"`
	Semester   int    `json:"semester" db:"semester"`
}
