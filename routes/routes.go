package routes

import (
	"net/http"

	"quizhub/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	userHandler *handlers.UserHandler,
) {
	// Auth
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Users
	router.GET("/get_user", userHandler.GetUser)

	// Games and questions
	router.GET("/get_items", gameHandler.GetItems)
	router.GET("/get_game_details", gameHandler.GetGameDetails)
	router.GET("/get_game_by_code", gameHandler.GetGameByCode)
	router.GET("/get_questions", gameHandler.GetQuestions)
	router.POST("/add_game", gameHandler.AddGame)
	router.POST("/add_questions", gameHandler.AddQuestions)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
