package middleware

import (
	"net/http"

	"github.com/certhub/certhub/pkg/models"
	"github.com/certhub/certhub/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequireSession aborts with 401 unless a session is active. The account is
// stored on the context under "account".
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": models.ErrNotAuthenticated.Error()})
			return
		}

		c.Set("account", account)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the active session is an admin.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": models.ErrNotAuthenticated.Error()})
			return
		}

		if account.Role != models.RoleAdmin {
			logrus.Warnf("account %s is not an admin", account.Email)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set("account", account)
		c.Next()
	}
}
