package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"os-tracker/internal/middleware"
)

// render wraps c.HTML and feeds every template the pending flash messages and
// the current user, when one is set. Reading flashes consumes them, so each
// message shows on exactly one page.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["flashes"] = flashes
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
	}

	c.HTML(status, tmpl, data)
}

// flashAndRedirect implements the redirect-after-POST contract: queue a
// one-time message and send the client elsewhere, never rendering directly
// from a mutating request.
func flashAndRedirect(c *gin.Context, message, location string) {
	sess := sessions.Default(c)
	sess.AddFlash(message)
	_ = sess.Save()
	c.Redirect(http.StatusFound, location)
}
