package services

import (
	"context"

	"quizhub/models"
	"quizhub/repository"
)

// UserStore is the persistence the auth and user services need.
// Implementations report failures with the repository sentinel errors.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID uint) (*models.User, error)
}

// GameStore is the persistence the game service needs.
type GameStore interface {
	CreateGame(ctx context.Context, game *models.Game) error
	CodeExists(ctx context.Context, code string) (bool, error)
	SearchGames(ctx context.Context, filter repository.GameFilter) ([]models.GameSummary, error)
	GetGameDetail(ctx context.Context, gameID uint) (*models.GameDetail, error)
	GetGameDetailByCode(ctx context.Context, code string) (*models.GameDetail, error)
	CreateQuestions(ctx context.Context, questions []models.Question) error
	ListQuestions(ctx context.Context, gameID uint) ([]models.Question, error)
}

var (
	_ UserStore = (*repository.UserRepository)(nil)
	_ GameStore = (*repository.GameRepository)(nil)
)
