package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CredentialChecker verifies a username/password pair. The check may block
// on the database and on bcrypt.
type CredentialChecker interface {
	Verify(ctx context.Context, username, password string) bool
}

// RequireBasicAuth guards a route group with HTTP Basic Authentication.
// Failures get a generic body so the response does not reveal whether the
// username or the password was wrong.
func RequireBasicAuth(checker CredentialChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !checker.Verify(c.Request.Context(), username, password) {
			c.Header("WWW-Authenticate", `Basic realm="participants"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("admin_user", username)
		c.Next()
	}
}
