package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/storage"
)

type Handler struct {
	dir *storage.Dir
}

func NewHandler(dir *storage.Dir) *Handler {
	return &Handler{
		dir: dir,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	if err := h.dir.Check(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "storage directory unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
