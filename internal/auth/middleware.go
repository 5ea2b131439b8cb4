package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/devport/portfolio-backend/internal/api/http"
)

const (
	CtxIdentityUID   = "identity_uid"
	CtxIdentityEmail = "identity_email"
)

// Require authenticates every request through the guard and aborts with a
// uniform 401 envelope on any failure. The body gives no hint whether the
// header was missing, malformed or carried a bad token.
func Require(guard *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := guard.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httpapi.AbortFail(c, http.StatusUnauthorized, httpapi.CodeUnauthorized, "authentication required", nil)
			return
		}

		c.Set(CtxIdentityUID, identity.UID)
		c.Set(CtxIdentityEmail, identity.Email)

		c.Next()
	}
}
