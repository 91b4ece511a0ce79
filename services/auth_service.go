package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quizhub/models"
	"quizhub/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// emailFormat checks addresses after trimming, so surrounding whitespace is
// accepted the same way on register and login.
var emailFormat = validator.New()

type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(users UserStore, hasher *PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		log:    log,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register stores a new user and returns its id.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (uint, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return 0, validationError("missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := emailFormat.Var(email, "email"); err != nil {
		return 0, validationError("email must be a valid email address")
	}
	if len(req.Password) > MaxPasswordBytes {
		return 0, validationError("password must be at most %d bytes", MaxPasswordBytes)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Description:  strings.TrimSpace(req.Description),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
		}
		return 0, storageError("create user", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	return user.ID, nil
}

// Login checks the credentials and returns the user id. No session is issued.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (uint, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return 0, validationError("email and password are required")
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, notFoundError("user not found")
		}
		return 0, storageError("find user", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("%w: user %d: %w", ErrInternal, user.ID, err)
	}
	if !ok {
		s.log.Warn().Uint("user_id", user.ID).Msg("login rejected: wrong password")
		return 0, fmt.Errorf("%w: incorrect password", ErrUnauthorized)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("login succeeded")
	return user.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
