package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/order"
)

type Handler struct {
	service *order.Service
}

func NewHandler(service *order.Service) *Handler {
	return &Handler{service: service}
}

// ListOrders serves both sides of an order: pharmacies see the orders routed
// to them with prescription details joined in, patients see the orders placed
// against their own prescriptions.
func (h *Handler) ListOrders(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	switch actor.Role {
	case model.RolePharmacy:
		orders, err := h.service.ListForPharmacy(actor)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(orders))
	case model.RolePatient:
		orders, err := h.service.ListForPatient(actor)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(orders))
	default:
		c.JSON(http.StatusForbidden, handler.NewErrorResponse("only patients and pharmacies can view prescription orders"))
	}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("prescription ID and pharmacy ID are required"))
		return
	}

	created, err := h.service.Create(actor, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")

	var req model.UpdateOrderRequest
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
	orders := r.Group("/prescription-orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.PATCH("/:id", h.UpdateOrder)
	}
}
