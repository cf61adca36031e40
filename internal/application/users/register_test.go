package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.ID = r.nextID
	r.nextID++
	r.byEmail[created.EmailAddress] = &created
	return &created, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "digest:" + password, nil }
func (fakeHasher) Verify(password, hash string) bool    { return "digest:"+password == hash }

func TestRegisterUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUser(repo, fakeHasher{})

	user, err := uc.Execute(context.Background(), RegisterUserInput{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@example.com",
		Password:     "secret",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "digest:secret", user.PasswordHash)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUser(repo, fakeHasher{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		FirstName: "Jane", LastName: "Doe", EmailAddress: "jane@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterUserInput{
		FirstName: "John", LastName: "Doe", EmailAddress: "jane@example.com", Password: "other",
	})
	assert.ErrorIs(t, err, domerrors.ErrEmailTaken)
	assert.Len(t, repo.byEmail, 1, "second create must not reach the store")
}
