package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/token", h.Login)
		auth.POST("/token/refresh", h.Refresh)
		auth.POST("/token/verify", h.Verify)
		auth.POST("/token/revoke", h.Revoke)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	user, access, refresh, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "this username is already taken"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		User:    dto.FromUserModel(user),
		Refresh: refresh,
		Access:  access,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	access, refresh, _, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// one generic message regardless of which part was wrong
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{Refresh: refresh, Access: access})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	access, err := h.authService.RefreshAccessToken(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrExpiredToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "refresh token is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	if _, err := h.authService.ValidateToken(req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "token is invalid or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *AuthHandler) Revoke(c *gin.Context) {
	var req dto.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	if err := h.authService.RevokeToken(c.Request.Context(), req.Refresh); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "token revoked"})
}
