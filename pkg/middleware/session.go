package middleware

import (
	"net/http"

	"zyro-visual/internal/session"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContextSessionKey is where the loaded session lives on the gin context.
const ContextSessionKey = "session"

// Sessions resolves the session cookie against the store and attaches the
// session to the request context. It never rejects: the guards below do.
func Sessions(store session.Store, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			log.Error("Failed to load session: %v", err)
			c.Next()
			return
		}
		if sess != nil {
			c.Set(ContextSessionKey, sess)
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by Sessions, or nil.
func SessionFrom(c *gin.Context) *session.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and authenticated
// non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		if !sess.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
