package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const internalErrorResponse = "Internal server error"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

var errInvalidID = errors.New("invalid id")

// envelope is the uniform {success, ..., response} body of every endpoint.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeOK(w http.ResponseWriter, response string, fields envelope) {
	body := envelope{"success": true, "response": response}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeFail(w http.ResponseWriter, status int, response string) {
	writeJSON(w, status, envelope{"success": false, "response": response})
}

func writeInternal(w http.ResponseWriter) {
	writeFail(w, http.StatusInternalServerError, internalErrorResponse)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
