package reminder

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/reminder"
)

type Handler struct {
	service *reminder.Service
}

func NewHandler(service *reminder.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListReminders(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	reminders, err := h.service.ListToday(actor, time.Now())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reminders))
}

func (h *Handler) UpdateReminder(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")

	var req model.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("taken is required"))
		return
	}

	updated, err := h.service.SetTaken(actor, id, *req.Taken)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reminders := r.Group("/medicine-reminders")
	{
		reminders.GET("", h.ListReminders)
		reminders.PATCH("/:id", h.UpdateReminder)
	}
}
