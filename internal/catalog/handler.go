package catalog

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListServices godoc
// @Summary      List bookable services
// @Description  Returns the active service menu shown on the public site.
// @Tags         services
// @Produce      json
// @Success      200  {array}   Service
// @Failure      500  {object}  gin.H
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.repo.GetActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListAllServices godoc
// @Summary      List all services
// @Description  Returns every service including inactive ones. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Service
// @Failure      500  {object}  gin.H
// @Router       /admin/services [get]
func (h *Handler) ListAllServices(c *gin.Context) {
	services, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService godoc
// @Summary      Create service
// @Description  Adds a new entry to the service menu. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateServiceRequest  true  "Service data"
// @Success      201      {object}  Service
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary      Update service
// @Description  Updates name, description, duration, price or active flag. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        serviceID  path      int                   true  "Service ID"
// @Param        request    body      UpdateServiceRequest  true  "Service data"
// @Success      200        {object}  Service
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.repo.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeactivateService godoc
// @Summary      Deactivate service
// @Description  Removes a service from the bookable menu without deleting its booking history. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {object}  gin.H
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeactivateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	if err := h.repo.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deactivated"})
}
