package domain

import "time"

// Session binds an opaque token to the identity captured at login time. The
// role is a snapshot: it is not re-read from the user record on later
// requests.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
