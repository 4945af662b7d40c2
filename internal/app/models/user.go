package models

// Role names stored in the users table.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User defines an account row from the 'users' table. Passwords are stored
// and served in plaintext: the admin user listing exposes them as part of
// the documented service contract.
type User struct {
	ID        int64   `json:"id" db:"id"`
	Username  string  `json:"username" db:"username"`
	Password  string  `json:"password" db:"password"`
	Role      string  `json:"role" db:"role"`
	StudentID *string `json:"student_id,omitempty" db:"student_id"`
}
