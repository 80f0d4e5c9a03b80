package domain

// Session is the authenticated identity held by the running dashboard.
// A rendered authenticated view never exists without both a Session and a
// non-empty upstream bearer token; if either is missing the user is logged
// out.
type Session struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
}

// ChatMessage is one entry of a persisted chat transcript.
type ChatMessage struct {
	ID        string `json:"id" bson:"id"`
	Role      string `json:"role" bson:"role"` // "user" or "assistant"
	Content   string `json:"content" bson:"content"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
