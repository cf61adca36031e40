package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/courseapi/internal/application/ports"
)

// BasicAuthenticator resolves HTTP Basic credentials (username = email
// address) to a user and puts it in the request context (see
// UserFromContext). Every failure mode answers with the same 401 body; the
// distinct reasons go to the log only, so the response never reveals
// whether an email is registered.
type BasicAuthenticator struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewBasicAuthenticator(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *BasicAuthenticator {
	return &BasicAuthenticator{users: users, hasher: hasher, log: log}
}

func (m *BasicAuthenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, pass, ok := r.BasicAuth()
		if !ok {
			m.deny(w, "Authorization header not found")
			return
		}
		user, err := m.users.GetByEmail(r.Context(), name)
		if err != nil {
			RecordAuthAttempt("error")
			writeServerError(w, err)
			return
		}
		if user == nil {
			m.deny(w, fmt.Sprintf("User not found for Username: %s", name))
			return
		}
		if !m.hasher.Verify(pass, user.PasswordHash) {
			m.deny(w, fmt.Sprintf("Incorrect password for Username: %s", user.EmailAddress))
			return
		}
		m.log.Debug().Str("username", user.EmailAddress).Msg("authentication successful")
		RecordAuthAttempt("success")
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (m *BasicAuthenticator) deny(w http.ResponseWriter, reason string) {
	m.log.Warn().Msg(reason)
	RecordAuthAttempt("denied")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
}

// writeServerError mirrors the top-level error payload for failures that
// surface inside the middleware chain.
func writeServerError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message": err.Error(),
		"error":   struct{}{},
	})
}
