package staff

import (
	"errors"
	"net/http"
	"strconv"

	"barbershop/internal/api"
	"barbershop/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary      Staff login
// @Description  Authenticates a staff account and returns access and refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Staff:        *account,
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Returns a new access token for a valid refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	newAccessToken, account, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": newAccessToken,
		"staff":        account,
	})
}

// GetMe godoc
// @Summary      Current staff account
// @Description  Returns the profile of the authenticated staff member.
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Staff
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /admin/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	id, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	account, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateStaff godoc
// @Summary      Create staff account
// @Description  Adds a staff or admin account. Admin only.
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateStaffRequest  true  "Account data"
// @Success      201      {object}  Staff
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /admin/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	account, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListStaff godoc
// @Summary      List staff accounts
// @Description  Returns every staff account including deactivated ones. Admin only.
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Staff
// @Failure      500  {object}  gin.H
// @Router       /admin/staff [get]
func (h *Handler) ListStaff(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// DeactivateStaff godoc
// @Summary      Deactivate staff account
// @Description  Disables login for an account. The last active admin cannot be deactivated. Admin only.
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        staffID  path      int  true  "Staff ID"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /admin/staff/{staffID} [delete]
func (h *Handler) DeactivateStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("staffID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, ErrLastAdmin):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot deactivate the last admin"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deactivated"})
}
