package handlers

import (
	"net/http"

	"quizhub/repository"
	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type GameHandler struct {
	gameService *services.GameService
	log         zerolog.Logger
}

func NewGameHandler(gameService *services.GameService, log zerolog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		log:         log,
	}
}

type AddQuestionsRequest struct {
	GameID    uint                     `json:"game_id"`
	Questions []services.QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// GetItems searches games by name, subject and owner.
func (h *GameHandler) GetItems(c *gin.Context) {
	var filter repository.GameFilter
	if name, ok := optionalQuery(c, "name"); ok {
		filter.Name = &name
	}
	if subject, ok := optionalQuery(c, "subject"); ok {
		filter.Subject = &subject
	}
	if _, ok := optionalQuery(c, "owner_id"); ok {
		ownerID, err := queryID(c, "owner_id")
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		filter.OwnerID = &ownerID
	}

	games, err := h.gameService.FindGames(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetGameDetails(c *gin.Context) {
	gameID, err := queryID(c, "game_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	game, err := h.gameService.GetGameDetails(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) GetGameByCode(c *gin.Context) {
	game, err := h.gameService.GetGameByCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) GetQuestions(c *gin.Context) {
	gameID, err := queryID(c, "game_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	questions, err := h.gameService.GetQuestions(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *GameHandler) AddGame(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	game, err := h.gameService.CreateGame(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game_id": game.ID, "code": game.Code})
}

// AddQuestions takes the game id from the request, or from the first
// question when the request omits it.
func (h *GameHandler) AddQuestions(c *gin.Context) {
	var req AddQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}

	gameID := req.GameID
	if gameID == 0 {
		gameID = req.Questions[0].GameID
	}

	if err := h.gameService.CreateQuestions(c.Request.Context(), gameID, req.Questions); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
