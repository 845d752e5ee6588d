package testimonial

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

// ListTestimonials godoc
// @Summary      Approved testimonials
// @Description  Returns the testimonials shown on the public site.
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   Testimonial
// @Failure      500  {object}  gin.H
// @Router       /testimonials [get]
func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.repo.GetApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}

	if testimonials == nil {
		testimonials = []Testimonial{}
	}

	c.JSON(http.StatusOK, testimonials)
}

// SubmitTestimonial godoc
// @Summary      Submit testimonial
// @Description  Accepts a client testimonial. It appears on the site after staff approval.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitTestimonialRequest  true  "Testimonial"
// @Success      201      {object}  Testimonial
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /testimonials [post]
func (h *Handler) SubmitTestimonial(c *gin.Context) {
	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tm, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimonial"})
		return
	}

	c.JSON(http.StatusCreated, tm)
}

// ListAllTestimonials godoc
// @Summary      List all testimonials
// @Description  Returns every testimonial including unreviewed ones. Admin only.
// @Tags         testimonials
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Testimonial
// @Failure      500  {object}  gin.H
// @Router       /admin/testimonials [get]
func (h *Handler) ListAllTestimonials(c *gin.Context) {
	testimonials, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}

	if testimonials == nil {
		testimonials = []Testimonial{}
	}

	c.JSON(http.StatusOK, testimonials)
}

// ApproveTestimonial godoc
// @Summary      Approve testimonial
// @Description  Publishes a submitted testimonial. Admin only.
// @Tags         testimonials
// @Security     BearerAuth
// @Produce      json
// @Param        testimonialID  path      int  true  "Testimonial ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Router       /admin/testimonials/{testimonialID}/approve [post]
func (h *Handler) ApproveTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("testimonialID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	if err := h.repo.Approve(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial approved"})
}

// DeleteTestimonial godoc
// @Summary      Delete testimonial
// @Description  Removes a testimonial. Admin only.
// @Tags         testimonials
// @Security     BearerAuth
// @Produce      json
// @Param        testimonialID  path      int  true  "Testimonial ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Router       /admin/testimonials/{testimonialID} [delete]
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("testimonialID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
