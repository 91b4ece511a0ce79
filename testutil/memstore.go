package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"quizhub/models"
	"quizhub/repository"
)

// MemoryStore is an in-process stand-in for the gorm repositories. It keeps
// the same uniqueness and foreign key rules and reports violations with the
// repository sentinel errors. Name search matches substrings and exact codes;
// trigram similarity is only available against Postgres.
type MemoryStore struct {
	mu        sync.Mutex
	users     []models.User
	games     []models.Game
	questions []models.Question

	// DuplicateCodeFailures makes the next N CreateGame calls fail as if a
	// concurrent insert had committed the same code.
	DuplicateCodeFailures int
	// FailWith, when set, is returned by every call.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: users_email_key", repository.ErrDuplicateKey)
		}
	}
	user.ID = uint(len(m.users) + 1)
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)
	return nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MemoryStore) FindUserByID(_ context.Context, userID uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if u, ok := m.user(userID); ok {
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *MemoryStore) user(userID uint) (models.User, bool) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *MemoryStore) CreateGame(_ context.Context, game *models.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	if m.DuplicateCodeFailures > 0 {
		m.DuplicateCodeFailures--
		return fmt.Errorf("%w: games_code_key", repository.ErrDuplicateKey)
	}
	if _, ok := m.user(game.OwnerID); !ok {
		return fmt.Errorf("%w: games_owner_id_fkey", repository.ErrForeignKey)
	}
	for _, g := range m.games {
		if g.Code == game.Code {
			return fmt.Errorf("%w: games_code_key", repository.ErrDuplicateKey)
		}
	}
	game.ID = uint(len(m.games) + 1)
	game.CreatedAt = time.Now()
	m.games = append(m.games, *game)
	return nil
}

func (m *MemoryStore) CodeExists(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	for _, g := range m.games {
		if g.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) SearchGames(_ context.Context, filter repository.GameFilter) ([]models.GameSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []models.GameSummary
	for _, g := range m.games {
		if filter.OwnerID != nil && g.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.Subject != nil && !containsFold(g.Subject, *filter.Subject) {
			continue
		}
		if filter.Name != nil && !containsFold(g.Name, *filter.Name) && g.Code != *filter.Name {
			continue
		}
		out = append(out, models.GameSummary{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Subject:     g.Subject,
			Code:        g.Code,
			OwnerID:     g.OwnerID,
		})
	}
	return out, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (m *MemoryStore) GetGameDetail(_ context.Context, gameID uint) (*models.GameDetail, error) {
	return m.detail(func(g models.Game) bool { return g.ID == gameID })
}

func (m *MemoryStore) GetGameDetailByCode(_ context.Context, code string) (*models.GameDetail, error) {
	return m.detail(func(g models.Game) bool { return g.Code == code })
}

func (m *MemoryStore) detail(match func(models.Game) bool) (*models.GameDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, g := range m.games {
		if !match(g) {
			continue
		}
		owner, _ := m.user(g.OwnerID)
		return &models.GameDetail{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Subject:     g.Subject,
			Code:        g.Code,
			OwnerID:     g.OwnerID,
			OwnerName:   owner.Name,
			CreatedAt:   g.CreatedAt,
		}, nil
	}
	return nil, repository.ErrNotFound
}

// CreateQuestions validates every foreign key before inserting anything.
func (m *MemoryStore) CreateQuestions(_ context.Context, questions []models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	for _, q := range questions {
		if !m.gameExists(q.GameID) {
			return fmt.Errorf("%w: questions_game_id_fkey", repository.ErrForeignKey)
		}
	}
	for i := range questions {
		questions[i].ID = uint(len(m.questions) + 1)
		questions[i].CreatedAt = time.Now()
		m.questions = append(m.questions, questions[i])
	}
	return nil
}

func (m *MemoryStore) gameExists(gameID uint) bool {
	for _, g := range m.games {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

func (m *MemoryStore) ListQuestions(_ context.Context, gameID uint) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []models.Question
	for _, q := range m.questions {
		if q.GameID == gameID {
			out = append(out, q)
		}
	}
	return out, nil
}

// Games returns a copy of every stored game.
func (m *MemoryStore) Games() []models.Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Game(nil), m.games...)
}
