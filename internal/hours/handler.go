package hours

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// GetWeek godoc
// @Summary      Get opening hours
// @Description  Returns the weekly opening hours shown on the public site.
// @Tags         hours
// @Produce      json
// @Success      200  {array}   DayEntry
// @Failure      500  {object}  gin.H
// @Router       /hours [get]
func (h *Handler) GetWeek(c *gin.Context) {
	days, err := h.repo.GetWeek(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch opening hours"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// UpdateWeek godoc
// @Summary      Update opening hours
// @Description  Replaces the whole week's opening hours. Admin only.
// @Tags         hours
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateWeekRequest  true  "Seven day entries"
// @Success      200      {array}   DayEntry
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/hours [put]
func (h *Handler) UpdateWeek(c *gin.Context) {
	var req UpdateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject malformed or off-grid windows before touching the table.
	if _, err := ToWeekHours(req.Days); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seen := make(map[int]bool, 7)
	for _, day := range req.Days {
		if seen[day.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate weekday in request"})
			return
		}
		seen[day.Weekday] = true
	}

	if err := h.repo.ReplaceWeek(c.Request.Context(), req.Days); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opening hours"})
		return
	}

	days, err := h.repo.GetWeek(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch opening hours"})
		return
	}

	c.JSON(http.StatusOK, days)
}
