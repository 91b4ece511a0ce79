package repository

import (
	"context"

	"quizhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
