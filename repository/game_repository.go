package repository

import (
	"context"

	"quizhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) CreateGame(ctx context.Context, game *models.Game) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(game).Error)
}

func (r *GameRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *GameRepository) SearchGames(ctx context.Context, filter GameFilter) ([]models.GameSummary, error) {
	var games []models.GameSummary
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select("games.id, games.name, games.description, games.subject, games.code, games.owner_id").
		Scopes(filter.Scope).
		Order("games.id").
		Find(&games).Error
	return games, translate(err)
}

func (r *GameRepository) GetGameDetail(ctx context.Context, gameID uint) (*models.GameDetail, error) {
	return r.takeDetail(r.detailQuery(ctx).Where("games.id = ?", gameID))
}

func (r *GameRepository) GetGameDetailByCode(ctx context.Context, code string) (*models.GameDetail, error) {
	return r.takeDetail(r.detailQuery(ctx).Where("games.code = ?", code))
}

func (r *GameRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("games").
		Select("games.id, games.name, games.description, games.subject, games.code, games.owner_id, users.name AS owner_name, games.created_at").
		Joins("JOIN users ON users.id = games.owner_id")
}

func (r *GameRepository) takeDetail(query *gorm.DB) (*models.GameDetail, error) {
	var detail models.GameDetail
	if err := query.Take(&detail).Error; err != nil {
		return nil, translate(err)
	}
	return &detail, nil
}

// CreateQuestions inserts the whole batch in one transaction.
func (r *GameRepository) CreateQuestions(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	return translate(err)
}

func (r *GameRepository) ListQuestions(ctx context.Context, gameID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id").
		Find(&questions).Error
	return questions, translate(err)
}
