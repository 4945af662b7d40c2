package models

import "time"

// AuditEntry defines a row from the append-only 'logs' table. Entries are
// immutable and never deleted by the running service.
type AuditEntry struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Action      string    `json:"action" db:"action"`
	Endpoint    string    `json:"endpoint" db:"endpoint"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
	RequestData string    `json:"request_data" db:"request_data"`
}
