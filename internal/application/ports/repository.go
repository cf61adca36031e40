package ports

import (
	"context"

	"github.com/amirhosseinghanipour/courseapi/internal/domain"
)

// UserRepository defines persistence for users. Lookups return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// CourseRepository defines persistence for courses. Reads carry the owner
// projection; mutations are conditioned on ownership and report how many
// rows they touched, so a non-owner can never win a race with the
// preceding existence check.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.CourseWithOwner, error)
	GetByID(ctx context.Context, id int64) (*domain.CourseWithOwner, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	UpdateOwned(ctx context.Context, course *domain.Course) (int64, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (int64, error)
}
