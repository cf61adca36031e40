package users

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
)

type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// RegisterUser creates an account from validated signup fields. Each stage
// exits completely on failure: duplicate check, then hash, then create.
type RegisterUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	existing, err := uc.users.GetByEmail(ctx, input.EmailAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailTaken
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	return uc.users.Create(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		PasswordHash: hash,
	})
}
