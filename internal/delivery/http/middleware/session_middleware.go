package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-landdeals-backend/internal/session"
)

const (
	// SessionCookieName carries the visitor's session id.
	SessionCookieName = "session_id"
	// SessionContextKey is where the resolved *session.Session lives in the
	// gin context.
	SessionContextKey = "Session"

	sessionCookieMaxAge = 12 * 60 * 60
)

// SessionMiddleware resolves the visitor's session from the session cookie,
// minting a new session (and cookie) when none exists or the id is unknown.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	secure := os.Getenv("GIN_MODE") == "release"

	return func(c *gin.Context) {
		var sess *session.Session

		if id, err := c.Cookie(SessionCookieName); err == nil {
			sess, _ = store.Get(id)
		}
		if sess == nil {
			sess = store.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sess.ID, sessionCookieMaxAge, "/", "", secure, true)
		}

		c.Set(SessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession fetches the session placed by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, _ := c.Get(SessionContextKey)
	sess, _ := v.(*session.Session)
	return sess
}
