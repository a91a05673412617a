package domain

import "time"

// LoginAttempt is one row of the audit trail. Exactly one is written per login
// submission, successful or not, and rows are never updated or deleted.
type LoginAttempt struct {
	Username    string    `json:"username"`
	AttemptedAt time.Time `json:"attempted_at"`
	Success     bool      `json:"success"`
	SourceIP    string    `json:"source_ip"`
	UserAgent   string    `json:"user_agent"`
}
