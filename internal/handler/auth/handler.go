package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("email, password, name and role are required"))
		return
	}

	resp, err := h.service.Signup(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(resp))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("email and password are required"))
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) Me(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	user, err := h.service.CurrentUser(actor.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
	}
}
