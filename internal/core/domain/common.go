package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	UserID    string    `json:"user_id"` // creator
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
