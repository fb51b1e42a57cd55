package models

import "time"

// AuditFields are the audit columns shared by every table.
type AuditFields struct {
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Lifecycle holds the soft-delete columns of catalog tables.
type Lifecycle struct {
	IsDeleted  bool       `db:"is_deleted"`
	ArchivedAt *time.Time `db:"archived_at"`
}
