package usecase

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/pkg/errors"
)

const testSecret = "test-secret"

func newAuthUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	return NewAuthUseCase(fixtureRepo(t), testSecret, 3600)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, "NewPlayer", "a-long-password"))

	// The username is stored lowercased and login folds case.
	token, err := uc.Authenticate(ctx, "NEWPLAYER", "a-long-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "newplayer", claims.Subject)
}

func TestRegisterTakenUsername(t *testing.T) {
	uc := newAuthUseCase(t)

	err := uc.Register(context.Background(), "jess", "another-password")
	assert.True(t, errors.Is(err, errors.CodeConflict))
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	_, unknownErr := uc.Authenticate(ctx, "nobody", "whatever")
	_, wrongErr := uc.Authenticate(ctx, "jess", "not-her-password")

	assert.True(t, errors.Is(unknownErr, errors.CodeUnauthorized))
	assert.True(t, errors.Is(wrongErr, errors.CodeUnauthorized))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestGetUser(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	user, err := uc.GetUser(ctx, "jess")
	require.NoError(t, err)
	assert.Equal(t, "jess", user.Username)
	assert.Empty(t, user.FavouriteGames)

	_, err = uc.GetUser(ctx, "nobody")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
