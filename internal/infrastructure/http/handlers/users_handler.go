package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/courseapi/internal/application/users"
	domerrors "github.com/amirhosseinghanipour/courseapi/internal/domain/errors"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/middleware"
	"github.com/amirhosseinghanipour/courseapi/internal/validation"
)

// UsersHandler handles /api/users.
type UsersHandler struct {
	register *users.RegisterUser
	errorReporter
}

func NewUsersHandler(register *users.RegisterUser, log zerolog.Logger, logErrors bool) *UsersHandler {
	return &UsersHandler{
		register:      register,
		errorReporter: errorReporter{log: log, logErrors: logErrors},
	}
}

// userResponse is the JSON shape for the current user. The password digest
// has no representation here at all.
type userResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// Current returns the authenticated user. Requires BasicAuthenticator
// middleware; an unauthenticated request never reaches this point.
func (h *UsersHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	profile := user.Profile()
	writeJSON(w, http.StatusOK, userResponse{
		ID:           profile.ID,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		EmailAddress: profile.EmailAddress,
	})
}

type createUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// Create signs up a new user. Each stage returns immediately on failure:
// decode, validate, register.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	msgs := validation.Check("user", map[string]string{
		"firstName":    body.FirstName,
		"lastName":     body.LastName,
		"emailAddress": body.EmailAddress,
		"password":     body.Password,
	})
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs)
		return
	}
	_, err := h.register.Execute(r.Context(), users.RegisterUserInput{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		EmailAddress: body.EmailAddress,
		Password:     body.Password,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrEmailTaken) {
			writeMessage(w, http.StatusBadRequest,
				fmt.Sprintf("User with email address: %s already exists", body.EmailAddress))
			return
		}
		h.serverError(w, err)
		return
	}
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
