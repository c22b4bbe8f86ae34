package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
	auth    services.AuthServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, authService services.AuthServiceProvider) *UserHandler {
	return &UserHandler{service: service, auth: authService}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration and logs the new user in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := decodeBody(w, r, &payload); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payload.Username = strings.TrimSpace(payload.Username)
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Username == "" || payload.Email == "" || payload.Password == "" {
		writeFail(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			writeFail(w, http.StatusBadRequest, "User already exists")
			return
		}
		if errors.Is(err, auth.ErrPasswordTooLong) {
			writeFail(w, http.StatusBadRequest, "Password must be at most 72 bytes")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeInternal(w)
		return
	}

	res, err := h.auth.IssueFor(user)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token for new user")
		writeInternal(w)
		return
	}

	writeOK(w, "User created!", envelope{
		"token": res.Token,
		"user":  res.User,
	})
}

// GetAll handles the request to list every user.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve users")
		writeInternal(w)
		return
	}
	writeOK(w, "All users found!", envelope{"users": users})
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		h.fail(w, err, id, "Failed to get user by ID")
		return
	}
	writeOK(w, "User found!", envelope{"user": user.Sanitized()})
}

// Update handles updating a user's profile information.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := decodeBody(w, r, &payload); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id,
		strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Email))
	if err != nil {
		h.fail(w, err, id, "Failed to update user")
		return
	}
	writeOK(w, "User updated!", envelope{"user": user.Sanitized()})
}

// Delete handles the permanent deletion of a user account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, err, id, "Failed to delete user")
		return
	}
	writeOK(w, "User deleted!", nil)
}

func (h *UserHandler) fail(w http.ResponseWriter, err error, id int64, msg string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeFail(w, http.StatusNotFound, "User not found!")
	case errors.Is(err, services.ErrUserExists):
		writeFail(w, http.StatusBadRequest, "User already exists")
	default:
		log.Error().Err(err).Int64("user_id", id).Msg(msg)
		writeInternal(w)
	}
}
