package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	appointments, err := h.service.ListForUser(actor)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) BookAppointment(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("doctor ID and appointment date are required"))
		return
	}

	booked, err := h.service.Book(actor, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(booked))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("status is required"))
		return
	}

	updated, err := h.service.UpdateStatus(actor, id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.BookAppointment)
		appointments.PATCH("/:id", h.UpdateAppointment)
	}
}
