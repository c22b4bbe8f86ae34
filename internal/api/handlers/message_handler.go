package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/isdelr/rocket-be/internal/services"
	"github.com/isdelr/rocket-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// MessagePublisher pushes events to live subscribers.
type MessagePublisher interface {
	Publish(action string, payload interface{})
}

// MessageHandler handles HTTP requests for messages. Posted messages are
// authored by the configured context user.
type MessageHandler struct {
	service     services.MessageServiceProvider
	users       services.UserServiceProvider
	publisher   MessagePublisher
	contextUser string
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider, users services.UserServiceProvider, publisher MessagePublisher, contextUser string) *MessageHandler {
	return &MessageHandler{
		service:     service,
		users:       users,
		publisher:   publisher,
		contextUser: contextUser,
	}
}

// GetAll handles the request to list every message.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetAllMessages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve messages")
		writeInternal(w)
		return
	}
	writeOK(w, "All messages found!", envelope{"messages": messages})
}

// Get handles the request to get a single message by its ID.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}

	message, err := h.service.GetMessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			writeFail(w, http.StatusNotFound, "Message not found!")
			return
		}
		log.Error().Err(err).Int64("message_id", id).Msg("Failed to get message by ID")
		writeInternal(w)
		return
	}
	writeOK(w, "Message found!", envelope{"message": message})
}

// Create posts a new message and broadcasts it to live subscribers.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := decodeBody(w, r, &payload); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		writeFail(w, http.StatusBadRequest, "Message text is required")
		return
	}

	me, err := h.users.FindByLogin(r.Context(), h.contextUser)
	if err != nil {
		log.Error().Err(err).Str("login", h.contextUser).Msg("Failed to resolve context user")
		writeInternal(w)
		return
	}

	message, err := h.service.CreateMessage(r.Context(), payload.Text, me.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", me.ID).Msg("Failed to create message")
		writeInternal(w)
		return
	}

	if h.publisher != nil {
		h.publisher.Publish(websocket.ActionMessageCreated, message)
	}
	writeOK(w, "Message posted!", envelope{"message": message})
}

// Delete handles the request to delete a message.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.service.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			writeFail(w, http.StatusNotFound, "Message not found!")
			return
		}
		log.Error().Err(err).Int64("message_id", id).Msg("Failed to delete message")
		writeInternal(w)
		return
	}
	writeOK(w, "Message deleted!", nil)
}
