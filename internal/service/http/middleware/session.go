package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "ps_session"
	SessionKey    = "session_id"
)

// Session makes sure every request carries a session id, minting one when the
// browser has none or an unparsable one. The cookie is reissued on every
// request so its expiry follows the session's sliding ttl.
func Session(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || !validID(id) {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, maxAge, "/", "", false, true)
		c.Set(SessionKey, id)
		c.Next()
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
