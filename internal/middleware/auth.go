package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/devtrack-api/internal/constants"
	apierrors "github.com/yukikurage/devtrack-api/internal/errors"
)

// Session is the authenticated identity resolved for one request.
type Session struct {
	UserID   string
	UserName string
}

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(constants.ContextKeyUserID).(string)
		if userID == "" {
			apierrors.Unauthorized(c, "")
			return
		}
		userName, _ := session.Get(constants.ContextKeyUserName).(string)

		// Store the resolved session in context for handlers
		c.Set(constants.ContextKeySession, Session{UserID: userID, UserName: userName})
		c.Next()
	}
}

// CurrentSession returns the session resolved by RequireAuth
func CurrentSession(c *gin.Context) (Session, bool) {
	value, exists := c.Get(constants.ContextKeySession)
	if !exists {
		return Session{}, false
	}
	session, ok := value.(Session)
	if !ok || session.UserID == "" {
		return Session{}, false
	}
	return session, true
}

// SaveSession stores the identity in the session store and issues the cookie
func SaveSession(c *gin.Context, s Session) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, s.UserID)
	session.Set(constants.ContextKeyUserName, s.UserName)
	return session.Save()
}

// ClearSession removes the identity and expires the cookie
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
