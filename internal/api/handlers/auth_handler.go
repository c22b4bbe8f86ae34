package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles login and "who am I" requests.
type AuthHandler struct {
	auth  services.AuthServiceProvider
	users services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthServiceProvider, users services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{auth: authService, users: users}
}

// AuthPayload defines the structure for login requests.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an email/password pair and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		log.Warn().Str("email", payload.Email).Msg("Login attempt for unknown user")
		writeFail(w, http.StatusBadRequest, "User does not exist")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		writeFail(w, http.StatusBadRequest, "Invalid credentials")
		return
	case err != nil:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate user")
		writeInternal(w)
		return
	}

	writeOK(w, "Logged in!", envelope{
		"token": res.Token,
		"user":  res.User,
	})
}

// GetMe retrieves the currently authenticated user from the token.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve identity from context")
		writeInternal(w)
		return
	}

	user, err := h.users.GetUserByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Warn().Int64("user_id", identity.UserID).Msg("User from token not found in DB")
			writeFail(w, http.StatusNotFound, "User not found!")
			return
		}
		log.Error().Err(err).Int64("user_id", identity.UserID).Msg("Failed to load current user")
		writeInternal(w)
		return
	}

	writeOK(w, "User found!", envelope{"user": user.Sanitized()})
}
