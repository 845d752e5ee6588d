package gallery

import (
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

// ListImages godoc
// @Summary      Gallery images
// @Description  Returns the gallery in display order.
// @Tags         gallery
// @Produce      json
// @Success      200  {array}   Image
// @Failure      500  {object}  gin.H
// @Router       /gallery [get]
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	if images == nil {
		images = []Image{}
	}

	c.JSON(http.StatusOK, images)
}

// AddImage godoc
// @Summary      Add gallery image
// @Description  Adds an image to the gallery. Admin only.
// @Tags         gallery
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateImageRequest  true  "Image data"
// @Success      201      {object}  Image
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/gallery [post]
func (h *Handler) AddImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	c.JSON(http.StatusCreated, img)
}

// DeleteImage godoc
// @Summary      Delete gallery image
// @Description  Removes an image from the gallery. Admin only.
// @Tags         gallery
// @Security     BearerAuth
// @Produce      json
// @Param        imageID  path      int  true  "Image ID"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /admin/gallery/{imageID} [delete]
func (h *Handler) DeleteImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("imageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
