package handlers

import (
	"net/http"

	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService *services.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService *services.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	userID, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	userID, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}
