package user

import (
	"context"

	userRepo "pizzavoice/database/repository/user"
	"pizzavoice/models"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
