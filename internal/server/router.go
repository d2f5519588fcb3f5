package server

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"os-tracker/internal/config"
	"os-tracker/internal/database"
	"os-tracker/internal/handlers"
	"os-tracker/internal/middleware"
	"os-tracker/web"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("os_session", store))

	users := database.NewCredentialStore(db)
	orders := database.NewOrderRepository(db)
	h := handlers.New(users, orders)

	// slows down credential guessing; generous enough for humans
	limiter := middleware.NewRateStore(1, 10)

	r.GET("/", h.Index)

	r.GET("/register", h.ShowRegister)
	r.POST("/register", middleware.LimitPerClient(limiter), h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", middleware.LimitPerClient(limiter), h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(users))

	auth.GET("/dashboard", h.Dashboard)
	auth.GET("/add", h.ShowAdd)
	auth.POST("/add", h.Add)
	auth.GET("/edit/:id", h.ShowEdit)
	auth.POST("/edit/:id", h.Edit)
	auth.POST("/delete/:id", h.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
