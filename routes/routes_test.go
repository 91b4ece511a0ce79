package routes

import (
	"testing"

	"quizhub/handlers"
	"quizhub/services"
	"quizhub/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := testutil.NewMemoryStore()
	log := testutil.NopLogger()

	router := gin.New()
	SetupRoutes(router,
		handlers.NewAuthHandler(services.NewAuthService(store, services.NewPasswordHasher(bcrypt.MinCost), log), log),
		handlers.NewGameHandler(services.NewGameService(store, nil, log), log),
		handlers.NewUserHandler(services.NewUserService(store), log),
	)

	var got []string
	for _, r := range router.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	assert.ElementsMatch(t, []string{
		"POST /register",
		"POST /login",
		"GET /get_user",
		"GET /get_items",
		"GET /get_game_details",
		"GET /get_game_by_code",
		"GET /get_questions",
		"POST /add_game",
		"POST /add_questions",
		"GET /health",
	}, got)
}
