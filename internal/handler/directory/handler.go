package directory

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/middleware"
	"github.com/carelink/carelink-api/internal/service/directory"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.Doctors()
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListPharmacies(c *gin.Context) {
	pharmacies, err := h.service.Pharmacies()
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(pharmacies))
}

func (h *Handler) ListPatients(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	patients, err := h.service.Patients(actor, time.Now())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

// RegisterRoutes wires the public directory listings
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctors", h.ListDoctors)
	r.GET("/pharmacies", h.ListPharmacies)
}

// RegisterProtectedRoutes wires the doctor-only patient roster
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/patients", h.ListPatients)
}
