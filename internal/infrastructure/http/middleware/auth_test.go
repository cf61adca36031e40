package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhosseinghanipour/courseapi/internal/domain"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user != nil && s.user.EmailAddress == email {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.user, nil
}

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "digest:" + password, nil }
func (stubHasher) Verify(password, hash string) bool    { return "digest:"+password == hash }

func authedServer(repo *stubUserRepo) (http.Handler, *bool, **domain.User) {
	reached := new(bool)
	seen := new(*domain.User)
	auth := NewBasicAuthenticator(repo, stubHasher{}, zerolog.Nop())
	h := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		*seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, reached, seen
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestMissingAuthorizationHeader(t *testing.T) {
	h, reached, _ := authedServer(&stubUserRepo{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access Denied", decodeMessage(t, rec))
	assert.False(t, *reached)
}

func TestUnknownUser(t *testing.T) {
	h, reached, _ := authedServer(&stubUserRepo{})
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("ghost@example.com", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access Denied", decodeMessage(t, rec))
	assert.False(t, *reached)
}

func TestWrongPassword(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{
		ID: 1, EmailAddress: "jane@example.com", PasswordHash: "digest:secret",
	}}
	h, reached, _ := authedServer(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jane@example.com", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// The wrong-password body is indistinguishable from unknown-user.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access Denied", decodeMessage(t, rec))
	assert.False(t, *reached)
}

func TestSuccessAttachesUser(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{
		ID: 1, EmailAddress: "jane@example.com", PasswordHash: "digest:secret",
	}}
	h, reached, seen := authedServer(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jane@example.com", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
	require.NotNil(t, *seen)
	assert.EqualValues(t, 1, (*seen).ID)
}

func TestStorageErrorIsServerError(t *testing.T) {
	h, reached, _ := authedServer(&stubUserRepo{err: errors.New("connection refused")})
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jane@example.com", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, *reached)
}

func TestUserFromContextEmpty(t *testing.T) {
	assert.Nil(t, UserFromContext(context.Background()))
}
