package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"os-tracker/internal/database"
	"os-tracker/internal/models"
)

const (
	SessionUserKey = "user_id"
	ContextUserKey = "CurrentUser"
)

// RequireAuth resolves the session's user id through the credential store and
// puts the user into the gin context. A missing token, or a token whose user
// no longer resolves, is treated as not logged in and redirected to /login.
func RequireAuth(users *database.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uid, ok := sess.Get(SessionUserKey).(uint)
		if !ok || uid == 0 {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.ByID(uid)
		if err != nil {
			logrus.WithError(err).Error("session user lookup failed")
			c.String(http.StatusInternalServerError, "internal error")
			c.Abort()
			return
		}
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, *user)
		c.Next()
	}
}

// CurrentUser returns the user placed into the context by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
