package handlers

import (
	"errors"
	"log"
	"net/http"
	"yanews/internal/middleware"
	"yanews/internal/services"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Code": code})
}

func notFound(c *gin.Context) {
	RenderError(c, http.StatusNotFound, "Страница не найдена")
}

// serviceError maps a service error to an error page. Missing and foreign records are both 404.
func serviceError(c *gin.Context, op string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		notFound(c)
		return
	}
	log.Printf("[%s] %s failed: %v", middleware.GetRequestID(c), op, err)
	RenderError(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
}
