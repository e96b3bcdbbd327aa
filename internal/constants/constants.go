package constants

// Context and session keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserName  = "user_name"
	ContextKeySession   = "session"
	ContextKeyRequestID = "request_id"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-Id"

// SessionCookieName is the name of the session cookie issued on login
const SessionCookieName = "devtrack_session"

// MinPasswordLength is the minimum accepted password length on registration
const MinPasswordLength = 6

// Log hour bounds
const (
	MinLogHours = 0.5
	MaxLogHours = 24
)

// Skill level bounds
const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)
