package prescription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/prescription"
)

type Handler struct {
	service *prescription.Service
}

func NewHandler(service *prescription.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	prescriptions, err := h.service.ListForUser(actor)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(prescriptions))
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req model.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("patient ID and medication name are required"))
		return
	}

	created, err := h.service.Create(actor, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	prescriptions := r.Group("/prescriptions")
	{
		prescriptions.GET("", h.ListPrescriptions)
		prescriptions.POST("", h.CreatePrescription)
	}
}
