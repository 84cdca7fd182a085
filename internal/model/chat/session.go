package chat

import "time"

// Session captures a transient anonymous widget conversation. State is
// session-lived: nothing survives a close or a full page reload.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
