package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"os-tracker/internal/database"
	"os-tracker/internal/middleware"
)

func orderFieldsFromForm(c *gin.Context) database.OrderFields {
	return database.OrderFields{
		Client:      c.PostForm("cliente"),
		Technician:  c.PostForm("tecnico"),
		Description: c.PostForm("descricao"),
		Value:       c.PostForm("valor"),
		Status:      c.PostForm("status"),
	}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handlers) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	orders, err := h.Orders.ListForOwner(user.ID)
	if err != nil {
		logrus.WithError(err).Error("list orders failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{"orders": orders})
}

func (h *Handlers) ShowAdd(c *gin.Context) {
	render(c, http.StatusOK, "add.html", nil)
}

func (h *Handlers) Add(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	_, err := h.Orders.Create(user.ID, orderFieldsFromForm(c))
	switch {
	case errors.Is(err, database.ErrEmptyField):
		flashAndRedirect(c, "Preencha todos os campos.", "/add")
	case err != nil:
		logrus.WithError(err).Error("create order failed")
		c.String(http.StatusInternalServerError, "erro interno")
	default:
		flashAndRedirect(c, "OS adicionada.", "/dashboard")
	}
}

func (h *Handlers) ShowEdit(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := orderID(c)
	if !ok {
		flashAndRedirect(c, "OS não encontrada.", "/dashboard")
		return
	}

	order, err := h.Orders.Get(id, user.ID)
	if err != nil {
		logrus.WithError(err).Error("load order failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}
	if order == nil {
		flashAndRedirect(c, "OS não encontrada.", "/dashboard")
		return
	}

	render(c, http.StatusOK, "edit.html", gin.H{"order": order})
}

func (h *Handlers) Edit(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := orderID(c)
	if !ok {
		flashAndRedirect(c, "OS não encontrada.", "/dashboard")
		return
	}

	err := h.Orders.Update(id, user.ID, orderFieldsFromForm(c))
	switch {
	case errors.Is(err, database.ErrNotFound):
		flashAndRedirect(c, "OS não encontrada.", "/dashboard")
	case err != nil:
		logrus.WithError(err).Error("update order failed")
		c.String(http.StatusInternalServerError, "erro interno")
	default:
		flashAndRedirect(c, "OS atualizada.", "/dashboard")
	}
}

// Delete is idempotent: removing an id that does not exist, or that belongs
// to someone else, still lands on the dashboard with the same message.
func (h *Handlers) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, ok := orderID(c)
	if ok {
		if err := h.Orders.Delete(id, user.ID); err != nil {
			logrus.WithError(err).Error("delete order failed")
			c.String(http.StatusInternalServerError, "erro interno")
			return
		}
	}

	flashAndRedirect(c, "OS removida.", "/dashboard")
}
