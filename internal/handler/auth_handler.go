package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scene-backend/internal/service"
	"github.com/scene-backend/pkg/response"
)

// AuthHandler handles authentication API requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles user registration
// @Summary      Register a new user
// @Description  Creates a user account; fails on duplicate username or email.
// @Success      201  {object}  models.AuthResponse
// @Failure      400  {object}  response.Message
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.BadRequest(c, "Username already exists")
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "Email already exists")
			return
		}
		response.InternalError(c, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles user login
// @Summary      Log in
// @Description  Authenticates a user and returns the identity descriptor.
//
//	The token field stays null while JWT issuance is disabled.
//
// @Success      200  {object}  models.AuthResponse
// @Failure      401  {object}  response.Message
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.InternalError(c, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}
