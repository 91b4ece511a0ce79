package services

import (
	"context"
	"errors"

	"quizhub/models"
	"quizhub/repository"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	if userID == 0 {
		return nil, validationError("user_id is required")
	}
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("user %d", userID)
		}
		return nil, storageError("get user", err)
	}
	return &models.UserProfile{Name: user.Name, Description: user.Description}, nil
}
