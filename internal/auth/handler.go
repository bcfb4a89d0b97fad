package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyquocphong/booking-system/internal/api"
	"github.com/lyquocphong/booking-system/internal/logger"
)

type Handler struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
}

func NewHandler(adminEmail, adminPasswordHash, jwtSecret string) *Handler {
	return &Handler{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Admin login
// @Description Authenticates the admin and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	if req.Email != h.adminEmail || !CheckPassword(h.adminPasswordHash, req.Password) {
		logger.Infof("Failed admin login attempt for %s", req.Email)
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := GenerateToken(req.Email, RoleAdmin, h.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to generate admin token: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
