package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pizzavoice/models"
	"pizzavoice/utils"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so login failures do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenDuration = time.Hour

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	return s.Repo.Create(ctx, user)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(user.ID.Hex(), user.Name, user.Email, tokenDuration)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}
