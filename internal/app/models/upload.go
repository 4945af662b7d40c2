package models

import "time"

// Upload defines a metadata row from the 'uploads' table. The row is
// written exactly once per accepted file and never updated.
type Upload struct {
	ID         int64     `json:"id" db:"id"`
	Filename   string    `json:"filename" db:"filename"`
	Uploader   string    `json:"uploader" db:"uploader"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
