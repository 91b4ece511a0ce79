package services

import (
	"context"
	"errors"
	"strings"

	"quizhub/models"
	"quizhub/repository"

	"github.com/rs/zerolog"
)

// maxCreateAttempts bounds how often CreateGame retries after losing a join
// code race at insert time.
const maxCreateAttempts = 5

type GameService struct {
	games    GameStore
	reserver CodeReserver
	log      zerolog.Logger
}

// NewGameService builds the service; reserver may be nil.
func NewGameService(games GameStore, reserver CodeReserver, log zerolog.Logger) *GameService {
	return &GameService{
		games:    games,
		reserver: reserver,
		log:      log,
	}
}

type CreateGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Subject     string `json:"subject"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
}

type QuestionInput struct {
	GameID       uint   `json:"game_id"`
	Text         string `json:"text" binding:"required"`
	Option1      string `json:"option1" binding:"required"`
	Option2      string `json:"option2" binding:"required"`
	Option3      string `json:"option3" binding:"required"`
	Option4      string `json:"option4" binding:"required"`
	CorrectIndex *int   `json:"correct_index" binding:"required,min=0,max=3"`
}

func (s *GameService) CreateGame(ctx context.Context, req *CreateGameRequest) (*models.Game, error) {
	name := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	var missing []string
	if name == "" {
		missing = append(missing, "title")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if req.OwnerID == 0 {
		missing = append(missing, "owner_id")
	}
	if len(missing) > 0 {
		return nil, validationError("missing required fields: %s", strings.Join(missing, ", "))
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		code, err := GenerateUniqueCode(ctx, s.codeTaken)
		if err != nil {
			return nil, storageError("allocate join code", err)
		}

		game := &models.Game{
			Name:        name,
			Description: description,
			Subject:     strings.TrimSpace(req.Subject),
			OwnerID:     req.OwnerID,
			Code:        code,
		}
		err = s.games.CreateGame(ctx, game)
		s.releaseCode(ctx, code)

		switch {
		case err == nil:
			s.log.Info().Uint("game_id", game.ID).Str("code", game.Code).Uint("owner_id", game.OwnerID).Msg("game created")
			return game, nil
		case errors.Is(err, repository.ErrDuplicateKey):
			// Another request committed the same code between check and insert.
			s.log.Warn().Str("code", code).Int("attempt", attempt).Msg("join code collision at insert, retrying")
		case errors.Is(err, repository.ErrForeignKey):
			return nil, notFoundError("owner %d does not exist", req.OwnerID)
		default:
			return nil, storageError("create game", err)
		}
	}
	return nil, storageError("create game", ErrCodeSpaceExhausted)
}

// codeTaken checks the store and, when configured, claims the code in redis
// so concurrent creators draw different codes.
func (s *GameService) codeTaken(ctx context.Context, code string) (bool, error) {
	taken, err := s.games.CodeExists(ctx, code)
	if err != nil {
		return false, err
	}
	if taken || s.reserver == nil {
		return taken, nil
	}

	reserved, err := s.reserver.Reserve(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("join code reservation unavailable, relying on store uniqueness")
		return false, nil
	}
	return !reserved, nil
}

func (s *GameService) releaseCode(ctx context.Context, code string) {
	if s.reserver == nil {
		return
	}
	if err := s.reserver.Release(ctx, code); err != nil {
		s.log.Debug().Err(err).Str("code", code).Msg("failed to release join code reservation")
	}
}

// CreateQuestions stores the batch atomically: either every question is
// present afterwards or none is.
func (s *GameService) CreateQuestions(ctx context.Context, gameID uint, inputs []QuestionInput) error {
	if gameID == 0 {
		return validationError("game_id is required")
	}
	if len(inputs) == 0 {
		return validationError("at least one question is required")
	}

	questions := make([]models.Question, 0, len(inputs))
	for i, in := range inputs {
		if in.GameID != 0 && in.GameID != gameID {
			return validationError("questions[%d]: game_id %d does not match %d", i, in.GameID, gameID)
		}
		q := models.Question{
			GameID:  gameID,
			Text:    strings.TrimSpace(in.Text),
			Option1: strings.TrimSpace(in.Option1),
			Option2: strings.TrimSpace(in.Option2),
			Option3: strings.TrimSpace(in.Option3),
			Option4: strings.TrimSpace(in.Option4),
		}
		if q.Text == "" {
			return validationError("questions[%d]: text is required", i)
		}
		for n, opt := range q.Options() {
			if opt == "" {
				return validationError("questions[%d]: option%d is required", i, n+1)
			}
		}
		if in.CorrectIndex == nil {
			return validationError("questions[%d]: correct_index is required", i)
		}
		if *in.CorrectIndex < 0 || *in.CorrectIndex >= models.OptionCount {
			return validationError("questions[%d]: correct_index must be between 0 and %d", i, models.OptionCount-1)
		}
		q.CorrectIndex = *in.CorrectIndex
		questions = append(questions, q)
	}

	if err := s.games.CreateQuestions(ctx, questions); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return notFoundError("game %d does not exist", gameID)
		}
		return storageError("create questions", err)
	}

	s.log.Info().Uint("game_id", gameID).Int("count", len(questions)).Msg("questions created")
	return nil
}

// FindGames never returns nil; an empty filter lists every game.
func (s *GameService) FindGames(ctx context.Context, filter repository.GameFilter) ([]models.GameSummary, error) {
	games, err := s.games.SearchGames(ctx, filter)
	if err != nil {
		return nil, storageError("search games", err)
	}
	if games == nil {
		games = []models.GameSummary{}
	}
	return games, nil
}

func (s *GameService) GetGameDetails(ctx context.Context, gameID uint) (*models.GameDetail, error) {
	if gameID == 0 {
		return nil, validationError("game_id is required")
	}
	detail, err := s.games.GetGameDetail(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("game %d", gameID)
		}
		return nil, storageError("get game", err)
	}
	return detail, nil
}

func (s *GameService) GetGameByCode(ctx context.Context, code string) (*models.GameDetail, error) {
	code = NormalizeJoinCode(code)
	if code == "" {
		return nil, validationError("code is required")
	}
	if !IsJoinCode(code) {
		return nil, validationError("code must be %d characters from A-Z and 0-9", JoinCodeLength)
	}
	detail, err := s.games.GetGameDetailByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("game with code %s", code)
		}
		return nil, storageError("get game by code", err)
	}
	return detail, nil
}

// GetQuestions returns an empty slice for a game without questions.
func (s *GameService) GetQuestions(ctx context.Context, gameID uint) ([]models.Question, error) {
	if gameID == 0 {
		return nil, validationError("game_id is required")
	}
	questions, err := s.games.ListQuestions(ctx, gameID)
	if err != nil {
		return nil, storageError("list questions", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}
