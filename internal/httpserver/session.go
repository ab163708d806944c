package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "fb_session"
	sessionCtxKey = "sessionID"
)

// sessionMiddleware gives every visitor a stable session id via cookie,
// the analogue of browser-local storage scoping: records persist across
// visits from the same browser and stay isolated between browsers.
func sessionMiddleware() gin.HandlerFunc {
	maxAge := int((365 * 24 * time.Hour).Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, maxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
