package models

// LibraryLoan defines a row from the 'library' table.
type LibraryLoan struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  string  `json:"student_id" db:"student_id"`
	BookID     string  `json:"book_id" db:"book_id"`
	Title      string  `json:"title" db:"title"`
	IssueDate  string  `json:"issue_date" db:"issue_date"`
	DueDate    string  `json:"due_date" db:"due_date"`
	ReturnDate *string `json:"return_date" db:"return_date"`
	Fine       int     `json:"fine" db:"fine"`
}
