package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhosseinghanipour/courseapi/internal/application/users"
	"github.com/amirhosseinghanipour/courseapi/internal/domain"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/middleware"
)

type failingUserRepo struct{ err error }

func (r *failingUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, r.err
}

type noopHasher struct{}

func (noopHasher) Hash(password string) (string, error) { return "digest", nil }
func (noopHasher) Verify(password, hash string) bool    { return false }

func TestCreateUserStorageError(t *testing.T) {
	repo := &failingUserRepo{err: errors.New("connection refused")}
	h := NewUsersHandler(users.NewRegisterUser(repo, noopHasher{}), zerolog.Nop(), false)

	body := `{"firstName":"Jane","lastName":"Doe","emailAddress":"jane@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "connection refused", payload["message"])
	assert.Equal(t, map[string]interface{}{}, payload["error"])
}

func TestCreateUserMalformedBody(t *testing.T) {
	h := NewUsersHandler(users.NewRegisterUser(&failingUserRepo{}, noopHasher{}), zerolog.Nop(), false)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentWithoutContextUser(t *testing.T) {
	h := NewUsersHandler(users.NewRegisterUser(&failingUserRepo{}, noopHasher{}), zerolog.Nop(), false)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	h.Current(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())
}

func TestCurrentProjectionExcludesDigest(t *testing.T) {
	h := NewUsersHandler(users.NewRegisterUser(&failingUserRepo{}, noopHasher{}), zerolog.Nop(), false)

	user := &domain.User{
		ID: 3, FirstName: "Jane", LastName: "Doe",
		EmailAddress: "jane@example.com", PasswordHash: "$argon2id$...",
	}
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	h.Current(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.NotContains(t, rec.Body.String(), "password")
}
