package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"gameshelf/internal/domain/entity"
	"gameshelf/internal/domain/repository"
	"gameshelf/pkg/errors"
)

// AuthUseCase handles registration and login. Login failure collapses
// unknown-user and wrong-password into one error kind so callers cannot
// tell which occurred.
type AuthUseCase struct {
	repo      repository.Repository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthUseCase(repo repository.Repository, jwtSecret string, jwtExpirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(jwtExpirySeconds) * time.Second,
	}
}

// Register creates a new user with a bcrypt-hashed password. A taken
// username fails with a CONFLICT error.
func (uc *AuthUseCase) Register(ctx context.Context, username, password string) error {
	existing, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Conflict("Username is already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}
	return uc.repo.AddUser(ctx, entity.NewUser(username, string(hash)))
}

// Authenticate verifies the credentials and returns a signed session
// token. Unknown user and wrong password yield the same UNAUTHORIZED
// error.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.Unauthorized("Invalid username or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.Unauthorized("Invalid username or password", err)
	}
	return uc.issueToken(user.Username)
}

func (uc *AuthUseCase) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

func (uc *AuthUseCase) GetUser(ctx context.Context, username string) (UserDTO, error) {
	user, err := uc.repo.GetUser(ctx, username)
	if err != nil {
		return UserDTO{}, err
	}
	if user == nil {
		return UserDTO{}, errors.NotFound("User", nil)
	}
	return UserDTO{
		Username:       user.Username,
		FavouriteGames: gamesToDTO(user.FavouriteGames),
	}, nil
}
