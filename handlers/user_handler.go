package handlers

import (
	"net/http"

	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService *services.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService *services.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := queryID(c, "user_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
