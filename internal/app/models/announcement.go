package models

import "time"

// Announcement defines a row from the 'announcements' table.
type Announcement struct {
	ID       int64     `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	PostedBy string    `json:"posted_by" db:"posted_by"`
	Date     time.Time `json:"date" db:"date"`
	Audience string    `json:"audience" db:"audience"`
}
