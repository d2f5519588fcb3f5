package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"os-tracker/internal/database"
	"os-tracker/internal/middleware"
)

// Index shows the landing page, or sends an authenticated visitor straight
// to the dashboard.
func (h *Handlers) Index(c *gin.Context) {
	sess := sessions.Default(c)
	if uid, ok := sess.Get(middleware.SessionUserKey).(uint); ok && uid > 0 {
		if user, err := h.Users.ByID(uid); err == nil && user != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	render(c, http.StatusOK, "index.html", nil)
}

func (h *Handlers) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func (h *Handlers) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.Users.Register(username, password)
	switch {
	case errors.Is(err, database.ErrEmptyField):
		flashAndRedirect(c, "Preencha usuário e senha.", "/register")
	case errors.Is(err, database.ErrDuplicateUsername):
		flashAndRedirect(c, "Usuário já existe.", "/register")
	case err != nil:
		logrus.WithError(err).Error("register failed")
		c.String(http.StatusInternalServerError, "erro interno")
	default:
		flashAndRedirect(c, "Conta criada. Faça login.", "/login")
	}
}

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func (h *Handlers) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.Users.Authenticate(username, password)
	if err != nil {
		logrus.WithError(err).Error("login failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}
	if user == nil {
		flashAndRedirect(c, "Usuário ou senha incorretos.", "/login")
		return
	}

	// drop any previous session payload before binding the new identity,
	// so a session can never be carried across accounts
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUserKey, user.ID)
	sess.AddFlash("Login efetuado.")
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.AddFlash("Desconectado.")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
