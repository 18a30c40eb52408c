package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/inventory"
)

type Handler struct {
	service *inventory.Service
}

func NewHandler(service *inventory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListInventory(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	items, err := h.service.List(actor)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func (h *Handler) CreateItem(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req model.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("medicine name and stock are required"))
		return
	}

	created, err := h.service.Create(actor, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) UpdateItem(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")

	var req model.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	updated, err := h.service.Update(actor, id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteItem(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")

	if err := h.service.Delete(actor, id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "item deleted"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/inventory")
	{
		items.GET("", h.ListInventory)
		items.POST("", h.CreateItem)
		items.PATCH("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}
