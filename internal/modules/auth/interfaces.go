package auth

import (
	"context"

	"motorhub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type WorkshopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
	GetByEmail(ctx context.Context, email string) (*domain.Workshop, error)
}

type IdentityChecker interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
}

type TokenIssuer interface {
	Generate(accountID int64, role string) (string, error)
}
