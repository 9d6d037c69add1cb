package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// Messages returned for unknown ids.
const (
	msgPizzaNotFound   = "No pizza found with this id!"
	msgCommentNotFound = "No comment found with this id!"
	msgReplyNotFound   = "No reply found with this id!"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Encoding response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Message: message})
}

// writeError maps a service error to a status code and message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPizzaNotFound):
		writeMessage(w, http.StatusNotFound, msgPizzaNotFound)
	case errors.Is(err, domain.ErrCommentNotFound):
		writeMessage(w, http.StatusNotFound, msgCommentNotFound)
	case errors.Is(err, domain.ErrReplyNotFound):
		writeMessage(w, http.StatusNotFound, msgReplyNotFound)
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	default:
		writeMessage(w, http.StatusBadRequest, err.Error())
	}
}
