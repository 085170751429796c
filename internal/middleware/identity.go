package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"

	ctxIdentityKey = "identity"
)

// ErrorResponder renders an error envelope; handlers.RespondError satisfies it.
type ErrorResponder func(c *gin.Context, status int, message string)

// GatewayIdentity trusts the identity headers injected by the upstream gateway.
// It does not authenticate anything itself.
func GatewayIdentity(respond ErrorResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if rawID == "" || email == "" {
			respond(c, http.StatusUnauthorized, "User authentication headers missing")
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			respond(c, http.StatusBadRequest, "Invalid user ID format")
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, dtos.Identity{UserID: userID, Email: email})
		c.Next()
	}
}

// CurrentUser returns the identity stored by GatewayIdentity.
func CurrentUser(c *gin.Context) (dtos.Identity, bool) {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return dtos.Identity{}, false
	}
	id, ok := v.(dtos.Identity)
	return id, ok
}

// MustCurrentUser is CurrentUser for routes mounted behind GatewayIdentity.
// It panics when the middleware did not run.
func MustCurrentUser(c *gin.Context) dtos.Identity {
	return c.MustGet(ctxIdentityKey).(dtos.Identity)
}
