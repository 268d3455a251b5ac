// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

const sessionIDKey = "session_id"

// Resolve attaches a session to every request. A valid bearer token binds
// the request to its existing session; otherwise a fresh anonymous
// session is created and its token is returned in the X-Session-Token
// response header for the client to carry forward.
func Resolve(sessions *session.Manager, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := auth.ExtractTokenFromHeader(c.GetHeader("Authorization")); tokenString != "" {
			if sessionID, err := tokens.Validate(tokenString); err == nil {
				if _, err := sessions.Get(sessionID); err == nil {
					c.Set(sessionIDKey, sessionID)
					c.Next()
					return
				}
			}
		}

		// No usable token: start a fresh session.
		sess := sessions.Create()
		token, err := tokens.Generate(sess.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create session",
			})
			c.Abort()
			return
		}

		c.Header("X-Session-Token", token)
		c.Set(sessionIDKey, sess.ID)
		c.Next()
	}
}

// RequireAdmin ensures the session's admin track is logged in
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromContext(c, sessions)
		if !ok {
			return
		}

		if !sess.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCustomer ensures the session has an authenticated customer
func RequireCustomer(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFromContext(c, sessions)
		if !ok {
			return
		}

		if sess.Customer == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Customer authentication required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSessionID extracts the resolved session id from gin context
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(sessionIDKey)
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}

func sessionFromContext(c *gin.Context, sessions *session.Manager) (session.Session, bool) {
	sessionID, exists := GetSessionID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session required",
		})
		c.Abort()
		return session.Session{}, false
	}

	sess, err := sessions.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired",
		})
		c.Abort()
		return session.Session{}, false
	}

	return sess, true
}
