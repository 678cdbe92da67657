package handlers

import (
	"log"
	"net/http"
	"yanews/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(g *gorm.DB) *HealthHandler {
	return &HealthHandler{db: g}
}

// Healthz answers ok while the database is reachable.
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := db.Ping(h.db); err != nil {
		log.Printf("Health check failed: %v", err)
		c.String(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
