package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// Authenticator is the service surface the auth handler depends on.
type Authenticator interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles admin signup and login endpoints.
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/admin/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	token, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrEmailRegistered) {
			utils.Error(c, 409, "Email already registered")
			return
		}
		utils.Error(c, 500, "Signup failed")
		return
	}

	c.JSON(200, gin.H{"token": token})
}

// Login handles POST /auth/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrAdminNotFound) {
			utils.Error(c, 404, "Admin not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "Invalid credentials")
			return
		}
		utils.Error(c, 500, "Login failed")
		return
	}

	c.JSON(200, gin.H{"token": token})
}
