package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	ctxSessionID  = "sessionID"
)

// withSession guarantees a session id for the request: an existing cookie is
// reused, otherwise a fresh id is issued and set on the response.
func (h *handlers) withSession(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		ttl := h.deps.SessionTTL
		if ttl <= 0 {
			ttl = 14 * 24 * time.Hour
		}
		c.SetCookie(sessionCookie, id, int(ttl.Seconds()), "/", "", false, true)
	}
	c.Set(ctxSessionID, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
