package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quizhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthService, *testutil.MemoryStore) {
	store := testutil.NewMemoryStore()
	return NewAuthService(store, NewPasswordHasher(bcrypt.MinCost), testutil.NopLogger()), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	id, err := svc.Register(ctx, &RegisterRequest{Email: "a@x.com", Password: "secret", Name: "Ana"})
	require.NoError(t, err)
	require.NotZero(t, id)

	loggedIn, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, id, loggedIn)

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc, store := newAuthService()
	_, err := svc.Register(context.Background(), &RegisterRequest{Email: "a@x.com", Password: "secret", Name: "Ana"})
	require.NoError(t, err)

	user, err := store.FindUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterRequest{Email: "a@x.com", Password: "secret", Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Email: " A@X.com", Password: "other", Name: "Imposter"})
	assert.ErrorIs(t, err, ErrConflict)

	user, err := store.FindUserByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	id, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, first, id)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService()

	tests := []struct {
		name     string
		req      RegisterRequest
		contains string
	}{
		{"no email", RegisterRequest{Password: "p", Name: "n"}, "email"},
		{"no password", RegisterRequest{Email: "a@x.com", Name: "n"}, "password"},
		{"no name", RegisterRequest{Email: "a@x.com", Password: "p"}, "name"},
		{"everything missing", RegisterRequest{}, "email, password, name"},
		{"malformed email", RegisterRequest{Email: "nope", Password: "p", Name: "n"}, "valid email"},
		{"password too long", RegisterRequest{Email: "a@x.com", Password: strings.Repeat("p", MaxPasswordBytes+1), Name: "n"}, "at most"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}

func TestRegisterStorageFailure(t *testing.T) {
	svc, store := newAuthService()
	store.FailWith = errors.New("connection refused")

	_, err := svc.Register(context.Background(), &RegisterRequest{Email: "a@x.com", Password: "secret", Name: "Ana"})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestLoginFailures(t *testing.T) {
	svc, store := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, &RegisterRequest{Email: "a@x.com", Password: "secret", Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, &LoginRequest{Password: "secret"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrNotFound)

	id, err := svc.Login(ctx, &LoginRequest{Email: "  A@x.COM ", Password: "secret"})
	require.NoError(t, err)
	assert.NotZero(t, id)

	testutil.SeedUser(t, store, "Broken", "broken@x.com")
	_, err = svc.Login(ctx, &LoginRequest{Email: "broken@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, ErrMalformedHash)
}
