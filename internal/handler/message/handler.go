package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/message"
)

type Handler struct {
	service *message.Service
}

func NewHandler(service *message.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListMessages(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	messages, err := h.service.ListForUser(actor)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(messages))
}

func (h *Handler) SendMessage(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("receiver ID and message are required"))
		return
	}

	sent, err := h.service.Send(actor, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(sent))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.GET("", h.ListMessages)
		messages.POST("", h.SendMessage)
	}
}
