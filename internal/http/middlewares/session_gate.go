package middlewares

import (
	"context"
	"net/http"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/session"
	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie issued at login.
const CookieName = "portfolio_session"

// Small interface so tests can fake the session lookup.
type SessionReader interface {
	Get(ctx context.Context, token string) (session.Session, bool, error)
}

type SessionGate struct {
	sessions SessionReader
}

func NewSessionGate(sessions SessionReader) *SessionGate {
	return &SessionGate{sessions: sessions}
}

const (
	ctxUserIDKey   = "auth.userID"
	ctxUsernameKey = "auth.username"
	ctxRoleKey     = "auth.role"
)

// RequireAdmin fails closed before the route body runs: no live session is
// a 401, a live session without the admin role is a 403.
func (g *SessionGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)

		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized - Please login",
			})
			return
		}

		sess, ok, err := g.sessions.Get(c.Request.Context(), token)

		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized - Please login",
			})
			return
		}

		if sess.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Access denied - Admin only",
			})
			return
		}

		c.Set(ctxUserIDKey, sess.UserID)
		c.Set(ctxUsernameKey, sess.Username)
		c.Set(ctxRoleKey, sess.Role)

		c.Next()
	}
}

// Helpers so handlers don't need to know the magic keys.

func UserIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func UsernameFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUsernameKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
