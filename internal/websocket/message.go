package websocket

import "encoding/json"

// ActionMessageCreated is pushed after a message has been posted.
const ActionMessageCreated = "message.created"

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// Encode marshals an action and payload into a wire message.
func Encode(action string, payload interface{}) ([]byte, error) {
	return json.Marshal(Message{Action: action, Payload: payload})
}
