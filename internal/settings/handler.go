package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSettings godoc
// @Summary      Shop settings
// @Description  Returns the public shop profile: name, address, phone, social links.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  gin.H
// @Router       /settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	values, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, values)
}

// UpdateSettings godoc
// @Summary      Update shop settings
// @Description  Upserts the given settings keys. Admin only.
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateSettingsRequest  true  "Settings"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Settings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No settings provided"})
		return
	}

	if err := h.service.Update(c.Request.Context(), req.Settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}
