package models

import "time"

// Comment defines a feedback row from the 'comments' table. The student_id
// is an unchecked association: it is never validated against an existing
// student.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID string    `json:"student_id" db:"student_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
